// Package models defines the core domain models for Guestlist.
//
// # Models
//
//   - Guest: a committed, validated entry in the guest list
//   - Draft: uncommitted form input, before validation
//
// A Guest is created only from a Draft that passed validation and is never
// mutated afterwards. There is no edit operation; a guest is either kept or
// deleted.
//
// # Persisted Layout
//
// The guest list is stored as one JSON array under a single key:
//
//	[{"id": 1, "name": "Ana", "age": 20, "major": true, "hobbies": ["reading", "chess"]}]
//
// The JSON tags on Guest define that layout and must stay stable so older
// snapshots keep loading.
package models
