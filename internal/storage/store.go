// Package storage provides abstractions for persistent data storage.
package storage

import "context"

// Store defines a string-keyed value store, the server-side counterpart of
// browser local storage. Values are opaque strings; callers own the encoding.
// This abstraction allows swapping storage backends (SQLite, memory, etc.)
// without changing the guest core.
type Store interface {
	// GetItem returns the value stored under key.
	// The boolean is false when the key has never been set.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, overwriting any prior value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
