package models

import "strings"

// Guest represents a guest on the list.
type Guest struct {
	// ID identifies the guest within the list.
	// Assigned by the store at creation time.
	ID int `json:"id"`

	// Name is the display name of the guest. Never empty.
	Name string `json:"name"`

	// Age is the guest's age in years (>= 1).
	Age int `json:"age"`

	// Major reports whether the guest is marked as an adult.
	// Never true when Age < 18.
	Major bool `json:"major"`

	// Hobbies are the trimmed tokens of the comma-separated form input.
	Hobbies []string `json:"hobbies"`
}

// ParseHobbies splits a comma-separated hobby list into trimmed tokens.
// Blank tokens ("reading,,chess" or a trailing comma) are dropped.
func ParseHobbies(raw string) []string {
	parts := strings.Split(raw, ",")
	hobbies := make([]string, 0, len(parts))
	for _, p := range parts {
		if h := strings.TrimSpace(p); h != "" {
			hobbies = append(hobbies, h)
		}
	}
	return hobbies
}
