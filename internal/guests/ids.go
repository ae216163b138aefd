package guests

import (
	"fmt"
	"strings"

	"github.com/mmynk/guestlist/internal/models"
)

// IDPolicy selects how new guests get their id.
type IDPolicy int

const (
	// CounterIDs assigns one more than the highest id the store has ever
	// held, including deleted guests and ids from the loaded snapshot.
	CounterIDs IDPolicy = iota

	// LengthIDs assigns len(list)+1. After a deletion this can hand out an
	// id that is still in use; it exists to stay compatible with lists
	// written by the original form.
	LengthIDs
)

func (p IDPolicy) String() string {
	switch p {
	case CounterIDs:
		return "counter"
	case LengthIDs:
		return "length"
	default:
		return fmt.Sprintf("IDPolicy(%d)", int(p))
	}
}

// ParseIDPolicy parses "counter" or "length". Empty input means CounterIDs.
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "counter":
		return CounterIDs, nil
	case "length":
		return LengthIDs, nil
	default:
		return 0, fmt.Errorf("unknown id policy %q (want counter or length)", s)
	}
}

func maxID(list []models.Guest) int {
	highest := 0
	for _, g := range list {
		if g.ID > highest {
			highest = g.ID
		}
	}
	return highest
}
