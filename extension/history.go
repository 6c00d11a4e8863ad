package extension

import (
	"reflect"
	"sync"
)

// History is the process-wide record of (target, name) pairs that were ever
// attached through the engine. The collision guard exempts recorded pairs from
// the already-exists rejection, so repeated interactive declarations of the
// same attribute never raise.
//
// Entries are append-only and live for the lifetime of the process. The
// mutex lets the guard's read and the engine's write be sequenced safely when
// multiple goroutines attach concurrently.
type History struct {
	mu      sync.RWMutex
	entries map[historyKey]struct{}
}

// historyKey identifies a history entry. reflect.Type values are canonical per
// type, so equality on the struct is exact.
type historyKey struct {
	rtype reflect.Type
	name  string
}

// NewHistory creates a new empty History.
func NewHistory() *History {
	return &History{entries: map[historyKey]struct{}{}}
}

// Record marks (target, name) as attached by this mechanism. Recording an
// already-present pair is a no-op; entries are never removed.
func (h *History) Record(target Target, name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.entries == nil {
		h.entries = map[historyKey]struct{}{}
	}
	h.entries[historyKey{rtype: target.Type(), name: name}] = struct{}{}
}

// Seen returns true if (target, name) was previously attached by this mechanism.
func (h *History) Seen(target Target, name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.entries[historyKey{rtype: target.Type(), name: name}]

	return ok
}

// Len returns the number of recorded pairs.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}
