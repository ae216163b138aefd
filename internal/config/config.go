// Package config loads server settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mmynk/guestlist/internal/guests"
	"github.com/mmynk/guestlist/pkg/logging"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Storage selects the key-value backend: sqlite or memory.
	Storage string

	// DBPath is the SQLite database file, used when Storage is sqlite.
	DBPath string

	// StorageKey is the key the guest list is saved under.
	StorageKey string

	// IDPolicy controls how new guest ids are assigned.
	IDPolicy guests.IDPolicy

	// JWTSecret signs host tokens. Required when HostPasswordHash is set.
	JWTSecret string

	// HostPasswordHash is the bcrypt hash of the host password.
	// Empty disables authentication.
	HostPasswordHash string

	// TokenTTL is how long host tokens remain valid.
	TokenTTL time.Duration

	LogLevel slog.Level
}

// AuthEnabled reports whether mutations require a host token.
func (c *Config) AuthEnabled() bool {
	return c.HostPasswordHash != ""
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv.
func LoadFrom(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	cfg := &Config{
		Addr:             env("GUESTLIST_ADDR", ":8080"),
		Storage:          env("GUESTLIST_STORAGE", StorageSQLite),
		DBPath:           env("GUESTLIST_DB_PATH", "./data/guestlist.db"),
		StorageKey:       env("GUESTLIST_STORAGE_KEY", guests.DefaultKey),
		JWTSecret:        getenv("GUESTLIST_JWT_SECRET"),
		HostPasswordHash: getenv("GUESTLIST_HOST_PASSWORD_HASH"),
	}

	var errs []error

	policy, err := guests.ParseIDPolicy(getenv("GUESTLIST_ID_POLICY"))
	if err != nil {
		errs = append(errs, fmt.Errorf("GUESTLIST_ID_POLICY: %w", err))
	}
	cfg.IDPolicy = policy

	ttl, err := time.ParseDuration(env("GUESTLIST_TOKEN_TTL", "24h"))
	if err != nil {
		errs = append(errs, fmt.Errorf("GUESTLIST_TOKEN_TTL: %w", err))
	} else if ttl <= 0 {
		errs = append(errs, fmt.Errorf("GUESTLIST_TOKEN_TTL: must be positive, got %s", ttl))
	}
	cfg.TokenTTL = ttl

	level, err := logging.ParseLevel(getenv("LOG_LEVEL"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level

	switch cfg.Storage {
	case StorageSQLite, StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("GUESTLIST_STORAGE: unknown backend %q", cfg.Storage))
	}

	if cfg.AuthEnabled() && cfg.JWTSecret == "" {
		errs = append(errs, errors.New("GUESTLIST_JWT_SECRET is required when GUESTLIST_HOST_PASSWORD_HASH is set"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
