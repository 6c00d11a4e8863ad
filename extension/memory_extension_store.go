package extension

import (
	"sync"
)

// MemoryExtensionStore is an in-memory implementation of the ExtensionStore and
// MutableExtensionStore interfaces. It is the side table that stands in for
// runtime attribute mutation on the target types themselves.
type MemoryExtensionStore struct {
	mu      sync.RWMutex
	Records []Extension
}

// MemoryExtensionStore implements ExtensionStore interface.
var _ ExtensionStore = &MemoryExtensionStore{}

// MemoryExtensionStore implements MutableExtensionStore interface.
var _ MutableExtensionStore = &MemoryExtensionStore{}

// NewMemoryExtensionStore creates a new MemoryExtensionStore instance.
func NewMemoryExtensionStore() *MemoryExtensionStore {
	return &MemoryExtensionStore{Records: []Extension{}}
}

// Get returns the Extension for the provided key, or an error if no such record exists.
func (s *MemoryExtensionStore) Get(key ExtensionKey) (Extension, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(key)
	if idx == -1 {
		return Extension{}, ErrExtensionNotFound
	}

	return s.Records[idx].Clone(), nil
}

// Fetch returns a copy of all Extension records in the store.
func (s *MemoryExtensionStore) Fetch() ([]Extension, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []Extension{}
	for _, record := range s.Records {
		records = append(records, record.Clone())
	}

	return records, nil
}

// Filter returns a copy of all Extension records in the store that pass all of the provided filters.
// Filters are applied in the order they are provided.
// If no filters are provided, all records are returned.
func (s *MemoryExtensionStore) Filter(filters ...FilterFunc[ExtensionKey, Extension]) []Extension {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := append([]Extension{}, s.Records...)
	for _, filter := range filters {
		records = filter(records)
	}

	return records
}

// indexOf returns the index of the record with the provided key, or -1 if no such record exists.
func (s *MemoryExtensionStore) indexOf(key ExtensionKey) int {
	for i, record := range s.Records {
		if record.Key().Equals(key) {
			return i
		}
	}

	return -1
}

// Add inserts a new record into the store.
// If a record with the same key already exists, an error is returned.
func (s *MemoryExtensionStore) Add(record Extension) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx != -1 {
		return ErrExtensionExists
	}
	s.Records = append(s.Records, record)

	return nil
}

// Upsert inserts a new record into the store if no record with the same key already exists.
// If a record with the same key already exists, it is updated.
func (s *MemoryExtensionStore) Upsert(record Extension) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		s.Records = append(s.Records, record)
		return nil
	}
	s.Records[idx] = record

	return nil
}

// Update edits an existing record whose fields match the primary key elements of the supplied Extension, with
// the non-primary-key values of the supplied Extension.
// If no such record exists, an error is returned.
func (s *MemoryExtensionStore) Update(record Extension) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.Key())
	if idx == -1 {
		return ErrExtensionNotFound
	}
	s.Records[idx] = record

	return nil
}

// Delete deletes an existing record whose primary key elements match the supplied key, returning an error if no
// such record exists.
func (s *MemoryExtensionStore) Delete(key ExtensionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(key)
	if idx == -1 {
		return ErrExtensionNotFound
	}
	s.Records = append(s.Records[:idx], s.Records[idx+1:]...)

	return nil
}
