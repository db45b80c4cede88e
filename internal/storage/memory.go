package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store with optional error injection.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string

	// SetErr and DeleteErr, when non-nil, are returned by writes.
	SetErr    error
	DeleteErr error
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Has reports whether key is present.
func (m *MemoryStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

// Value returns the raw value at key, or "".
func (m *MemoryStore) Value(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key]
}
