// Package api defines the wire messages of the guestlist.v1 RPC services.
//
// Messages are plain Go structs encoded as JSON with the codec in this
// package. Field names follow the persisted guest layout.
package api

// Guest is a guest on the list.
type Guest struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Age     int      `json:"age"`
	Major   bool     `json:"major"`
	Hobbies []string `json:"hobbies"`
}

// AddGuestRequest carries the form fields. Hobbies is the raw
// comma-separated text; Age 0 means the field was left empty.
type AddGuestRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Major   bool   `json:"major"`
	Hobbies string `json:"hobbies"`
}

type AddGuestResponse struct {
	Guest *Guest `json:"guest"`
}

type ListGuestsRequest struct{}

type ListGuestsResponse struct {
	Guests []*Guest `json:"guests"`
}

// SelectGuestRequest selects a guest by id. ID 0 clears the selection.
type SelectGuestRequest struct {
	ID int `json:"id"`
}

// SelectGuestResponse holds the new selection, nil when cleared.
type SelectGuestResponse struct {
	Guest *Guest `json:"guest,omitempty"`
}

type GetSelectionRequest struct{}

type GetSelectionResponse struct {
	Guest *Guest `json:"guest,omitempty"`
}

type DeleteGuestRequest struct {
	ID int `json:"id"`
}

// DeleteGuestResponse reports what the delete changed. Deleting an unknown
// id succeeds with Deleted false.
type DeleteGuestResponse struct {
	Deleted          bool `json:"deleted"`
	SelectionCleared bool `json:"selection_cleared"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	// ExpiresAt is a Unix timestamp.
	ExpiresAt int64 `json:"expires_at"`
}
