package guests

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmynk/guestlist/internal/models"
	"github.com/mmynk/guestlist/internal/storage"
)

// DefaultKey is the storage key the guest list lives under.
const DefaultKey = "guests"

// Encode serializes the full list as a JSON array.
func Encode(list []models.Guest) (string, error) {
	if list == nil {
		list = []models.Guest{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode guests: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON array of guests. A JSON null decodes to an empty list.
func Decode(data string) ([]models.Guest, error) {
	var list []models.Guest
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("failed to decode guests: %w", err)
	}
	if list == nil {
		list = []models.Guest{}
	}
	return list, nil
}

// Load reads the persisted list under key.
// A missing key or an unparseable value yields an empty list; only a failure
// of the store itself is returned as an error.
func Load(ctx context.Context, kv storage.Store, key string) ([]models.Guest, error) {
	data, ok, err := kv.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}
	if !ok {
		slog.Debug("No saved guest list", "key", key)
		return []models.Guest{}, nil
	}

	list, err := Decode(data)
	if err != nil {
		slog.Warn("Discarding unreadable guest list", "key", key, "error", err)
		return []models.Guest{}, nil
	}

	slog.Info("Guest list loaded", "key", key, "count", len(list))
	return list, nil
}
