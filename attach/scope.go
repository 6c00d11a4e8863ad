package attach

import (
	"sync"
)

// Scope is the binding-removal port. After a successful attachment with
// keep=false, the engine clears each attachable's top-level binding through
// this interface so the name does not also linger in the enclosing session
// scope. Hosts adapt their own binding tables; MapScope serves in-process use.
type Scope interface {
	// Lookup returns the current binding of name, and whether it exists.
	Lookup(name string) (any, bool)
	// Clear removes the binding of name. Clearing an absent binding is a no-op.
	Clear(name string) error
}

// MapScope is an in-memory Scope backed by a map, standing in for a notebook
// session's top-level bindings.
type MapScope struct {
	mu       sync.RWMutex
	bindings map[string]any
}

var _ Scope = &MapScope{}

// NewMapScope creates a new empty MapScope.
func NewMapScope() *MapScope {
	return &MapScope{bindings: map[string]any{}}
}

// Bind sets the binding of name to v.
func (s *MapScope) Bind(name string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bindings[name] = v
}

// Lookup returns the current binding of name, and whether it exists.
func (s *MapScope) Lookup(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.bindings[name]

	return v, ok
}

// Clear removes the binding of name.
func (s *MapScope) Clear(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bindings, name)

	return nil
}
