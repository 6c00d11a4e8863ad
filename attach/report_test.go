package attach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graftlabs/graft/extension"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	req := Request{
		Targets:     To(extension.TargetOf[box]()),
		Attachables: []Attachable{Const("a", 1), Const("b", 2)},
		Overwrite:   true,
	}

	report := NewReport(req, nil)

	assert.NotEmpty(t, report.ID)
	require.NotNil(t, report.Timestamp)
	assert.Equal(t, []string{extension.TargetOf[box]().String()}, report.Targets)
	assert.Equal(t, []string{"a", "b"}, report.Names)
	assert.True(t, report.Overwrite)
	assert.Nil(t, report.Err)

	failed := NewReport(req, ExistingAttributeError{Target: "pkg.box", Attr: "a"})
	require.NotNil(t, failed.Err)
	assert.Contains(t, failed.Err.Message, "already exists")
	assert.NotEqual(t, report.ID, failed.ID)
}

func TestMemoryReporter(t *testing.T) {
	t.Parallel()

	seeded := NewReport(Request{}, nil)
	reporter := NewMemoryReporter(WithReports([]Report{seeded}))

	got, err := reporter.GetReport(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)

	_, err = reporter.GetReport("unknown")
	require.ErrorIs(t, err, ErrReportNotFound)

	added := NewReport(Request{}, nil)
	require.NoError(t, reporter.AddReport(added))

	reports, err := reporter.GetReports()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, seeded.ID, reports[0].ID)
	assert.Equal(t, added.ID, reports[1].ID)
}
