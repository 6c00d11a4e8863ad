package attach

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/graftlabs/graft/extension"
	"github.com/graftlabs/graft/pkg/logger"
)

// Engine performs attachments. It bundles the injected dependencies: the side
// table the records land in, the process-wide history, a reporter, a logger,
// and the optional scope port. Use New to create an Engine.
type Engine struct {
	lggr     logger.Logger
	store    extension.MutableExtensionStore
	history  *extension.History
	reporter Reporter
	scope    Scope
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used by the Engine.
func WithLogger(lggr logger.Logger) EngineOption {
	return func(e *Engine) {
		e.lggr = lggr
	}
}

// WithStore sets the side table the Engine records attachments in.
func WithStore(store extension.MutableExtensionStore) EngineOption {
	return func(e *Engine) {
		e.store = store
	}
}

// WithHistory sets the history consulted by the collision guard.
func WithHistory(history *extension.History) EngineOption {
	return func(e *Engine) {
		e.history = history
	}
}

// WithReporter sets the reporter attachment reports are added to.
func WithReporter(reporter Reporter) EngineOption {
	return func(e *Engine) {
		e.reporter = reporter
	}
}

// WithScope sets the scope port used to clear top-level bindings when keep is
// false. Without a scope the engine skips binding removal.
func WithScope(scope Scope) EngineOption {
	return func(e *Engine) {
		e.scope = scope
	}
}

// New creates and returns a new Engine. Defaults: a no-op logger, a fresh
// in-memory store and history, a memory reporter, and no scope.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		lggr:     logger.Nop(),
		store:    extension.NewMemoryExtensionStore(),
		history:  extension.NewHistory(),
		reporter: NewMemoryReporter(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Store returns a read-only view of the engine's side table, for dispatch and
// inspection.
func (e *Engine) Store() extension.ExtensionStore { return e.store }

// History returns the engine's history.
func (e *Engine) History() *extension.History { return e.history }

// Reporter returns the engine's reporter.
func (e *Engine) Reporter() Reporter { return e.reporter }

// Attach attaches a subject (an Attachable, a []Attachable, or a Group) to
// every target, honoring the options. Every (target, name) pair across the
// whole request is validated before any record is applied, so a rejected
// request mutates nothing. Each invocation is recorded with the reporter,
// whether it succeeds or fails.
//
// After a successful attachment with keep=false, each attachable's top-level
// binding is cleared through the scope port.
func (e *Engine) Attach(subject any, to []extension.Target, opts ...Option) error {
	req, err := newRequest(subject, to, opts...)
	if err != nil {
		return err
	}

	err = e.attach(req)
	if reportErr := e.reporter.AddReport(NewReport(req, err)); reportErr != nil {
		e.lggr.Errorw("Failed to record attachment report", "error", reportErr)
	}

	return err
}

// resolvedAttachable is an attachable with its effective value determined.
type resolvedAttachable struct {
	name  string
	kind  extension.Kind
	value any
}

// attach runs the attachment algorithm for one request: resolve effective
// values, validate every pair, then apply, then clear bindings.
func (e *Engine) attach(req Request) error {
	if len(req.Targets) == 0 {
		return fmt.Errorf("must supply at least one target")
	}
	for _, target := range req.Targets {
		if target.IsZero() {
			return fmt.Errorf("targets must reference a type")
		}
	}
	if len(req.Attachables) == 0 {
		return fmt.Errorf("must supply at least one attachable")
	}

	// Resolve property wrapping up front so shape failures surface before any
	// validation or mutation.
	resolved := make([]resolvedAttachable, 0, len(req.Attachables))
	for _, a := range req.Attachables {
		kind, value, err := a.resolve(req.AsProperty)
		if err != nil {
			return err
		}
		resolved = append(resolved, resolvedAttachable{name: a.Name, kind: kind, value: value})
	}

	// Validate the whole request before applying anything. A single collision
	// anywhere fails the request with no targets mutated.
	for _, target := range req.Targets {
		for _, r := range resolved {
			if !allow(e.store, e.history, target, r.name, req.Overwrite) {
				return ExistingAttributeError{Target: target.String(), Attr: r.name}
			}
		}
	}

	for _, target := range req.Targets {
		for _, r := range resolved {
			record := extension.Extension{
				Target:  target,
				Name:    r.name,
				Kind:    r.kind,
				Version: req.Version,
				Value:   r.value,
				Bound:   isBound(r.kind, r.value, target),
			}
			if err := e.store.Upsert(record); err != nil {
				return fmt.Errorf("recording %s: %w", record.Key(), err)
			}
			e.history.Record(target, r.name)
			e.lggr.Debugw("Attached extension",
				"target", target.String(), "name", r.name, "kind", r.kind)
		}
	}

	e.lggr.Infow("Attachment applied",
		"targets", len(req.Targets), "attachables", len(resolved),
		"overwrite", req.Overwrite, "keep", req.Keep)

	if !req.Keep && e.scope != nil {
		for _, r := range resolved {
			if err := e.scope.Clear(r.name); err != nil {
				return fmt.Errorf("clearing binding %q: %w", r.name, err)
			}
		}
	}

	return nil
}

// isBound reports whether a method extension's first parameter accepts the
// target type, in which case dispatch passes the instance first.
func isBound(kind extension.Kind, value any, target extension.Target) bool {
	if kind != extension.KindMethod {
		return false
	}

	ft := reflect.TypeOf(value)
	if ft == nil || ft.Kind() != reflect.Func || ft.NumIn() == 0 {
		return false
	}
	if ft.IsVariadic() && ft.NumIn() == 1 {
		return false
	}

	rt := target.Type()

	return rt.AssignableTo(ft.In(0)) || reflect.PointerTo(rt).AssignableTo(ft.In(0))
}

// The default engine backs the package-level Attach, mirroring the
// process-global usage pattern of interactive sessions.
var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide default Engine, creating it on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})

	return defaultEngine
}

// Attach attaches through the process-wide default Engine. See Engine.Attach.
func Attach(subject any, to []extension.Target, opts ...Option) error {
	return Default().Attach(subject, to, opts...)
}
