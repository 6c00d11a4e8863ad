package attach

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Report is the result of one attachment request. It records what was
// attached where, the options used, and any failure, for session auditing.
type Report struct {
	ID         string       `json:"id"`
	Timestamp  *time.Time   `json:"timestamp"`
	Targets    []string     `json:"targets"`
	Names      []string     `json:"names"`
	Overwrite  bool         `json:"overwrite,omitempty"`
	Keep       bool         `json:"keep,omitempty"`
	AsProperty bool         `json:"asProperty,omitempty"`
	Err        *ReportError `json:"error,omitempty"`
}

// NewReport creates a new report for the given request and outcome.
func NewReport(req Request, err error) Report {
	now := time.Now()
	r := Report{
		ID:         uuid.New().String(),
		Timestamp:  &now,
		Overwrite:  req.Overwrite,
		Keep:       req.Keep,
		AsProperty: req.AsProperty,
	}
	for _, target := range req.Targets {
		r.Targets = append(r.Targets, target.String())
	}
	for _, a := range req.Attachables {
		r.Names = append(r.Names, a.Name)
	}
	if err != nil {
		r.Err = &ReportError{Message: err.Error()}
	}

	return r
}

// ReportError represents an error in the Report.
// Its purpose is to have an exported field `Message` for marshalling as the
// native error cant be marshaled to JSON.
type ReportError struct {
	Message string `json:"message"`
}

// Error implements the error interface.
func (o ReportError) Error() string {
	return o.Message
}

var ErrReportNotFound = errors.New("report not found")

// Reporter manages attachment reports.
type Reporter interface {
	GetReport(id string) (Report, error)
	GetReports() ([]Report, error)
	AddReport(report Report) error
}

// MemoryReporter stores reports in memory.
// This is thread-safe and can be used in a multi-threaded environment.
type MemoryReporter struct {
	reports []Report
	mu      sync.RWMutex
}

var _ Reporter = &MemoryReporter{}

type MemoryReporterOption func(*MemoryReporter)

// WithReports is an option to initialize the MemoryReporter with a list of reports.
func WithReports(reports []Report) MemoryReporterOption {
	return func(mr *MemoryReporter) {
		mr.reports = reports
	}
}

// NewMemoryReporter creates a new MemoryReporter.
// It can be initialized with a list of reports using the WithReports option.
func NewMemoryReporter(options ...MemoryReporterOption) *MemoryReporter {
	reporter := &MemoryReporter{}
	for _, opt := range options {
		opt(reporter)
	}

	return reporter
}

// GetReport returns the report with the given ID, or ErrReportNotFound.
func (r *MemoryReporter) GetReport(id string) (Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, report := range r.reports {
		if report.ID == id {
			return report, nil
		}
	}

	return Report{}, ErrReportNotFound
}

// GetReports returns a copy of all reports in insertion order.
func (r *MemoryReporter) GetReports() ([]Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Report{}, r.reports...), nil
}

// AddReport appends a report.
func (r *MemoryReporter) AddReport(report Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, report)

	return nil
}
