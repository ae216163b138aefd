// Package memory provides an in-process implementation of storage.Store.
// Nothing survives a restart; it backs tests and GUESTLIST_STORAGE=memory.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/guestlist/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store is a map guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
	// writes counts successful SetItem calls.
	writes int
}

// New returns an empty Store.
func New() *Store {
	return &Store{items: make(map[string]string)}
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItem stores value under key.
func (s *Store) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	s.writes++
	return nil
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Writes reports how many times SetItem has been called.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
