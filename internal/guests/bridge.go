package guests

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/guestlist/internal/metrics"
	"github.com/mmynk/guestlist/internal/models"
	"github.com/mmynk/guestlist/internal/storage"
)

// Bridge writes the full guest list to a key-value store on every change.
//
// The first Sync after construction is skipped: it carries the list that was
// just loaded, and writing it back would be a no-op. The latch never resets.
type Bridge struct {
	kv      storage.Store
	key     string
	primed  bool
	metrics *metrics.Metrics
	encode  func([]models.Guest) (string, error)
}

// NewBridge creates a Bridge writing under key. m may be nil.
func NewBridge(kv storage.Store, key string, m *metrics.Metrics) *Bridge {
	return &Bridge{kv: kv, key: key, metrics: m, encode: Encode}
}

// Primed reports whether the initial sync has been consumed.
func (b *Bridge) Primed() bool {
	return b.primed
}

// Sync overwrites the stored value with the full list.
func (b *Bridge) Sync(ctx context.Context, list []models.Guest) error {
	if !b.primed {
		b.primed = true
		slog.Debug("Skipping initial guest list write", "key", b.key)
		return nil
	}

	data, err := b.encode(list)
	if err != nil {
		b.metrics.ObserveSnapshotWrite(err)
		return err
	}

	err = b.kv.SetItem(ctx, b.key, data)
	b.metrics.ObserveSnapshotWrite(err)
	if err != nil {
		return fmt.Errorf("failed to write guest list: %w", err)
	}

	slog.Debug("Guest list written", "key", b.key, "count", len(list))
	return nil
}

// Listener adapts Sync for Store.Subscribe. Write failures are logged; the
// in-memory list stays authoritative and is not rolled back.
func (b *Bridge) Listener() Listener {
	return func(ctx context.Context, list []models.Guest) {
		if err := b.Sync(ctx, list); err != nil {
			slog.Error("Guest list write failed", "key", b.key, "error", err)
		}
	}
}

// Open loads the list stored under key, builds a Store from it and attaches
// a Bridge so every later change is written back.
func Open(ctx context.Context, kv storage.Store, key string, opts ...Option) (*Store, error) {
	initial, err := Load(ctx, kv, key)
	if err != nil {
		return nil, err
	}

	store := NewStore(initial, opts...)
	store.Subscribe(ctx, NewBridge(kv, key, store.metrics).Listener())
	return store, nil
}
