// Package guests holds the guest list core: the validator, the in-memory
// store with its selection, and the bridge that persists the list to a
// key-value store after every change.
//
// The core is synchronous and has a single writer. Callers that share a
// Store between goroutines must serialize access themselves.
//
// Startup is explicit:
//
//	initial, err := guests.Load(ctx, kv, "guests")
//	store := guests.NewStore(initial)
//	store.Subscribe(ctx, guests.NewBridge(kv, "guests", nil).Listener())
//
// Open does the same in one call.
package guests
