package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/guestlist/internal/guests"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Storage != StorageSQLite {
		t.Errorf("Storage = %q", cfg.Storage)
	}
	if cfg.StorageKey != "guests" {
		t.Errorf("StorageKey = %q", cfg.StorageKey)
	}
	if cfg.IDPolicy != guests.CounterIDs {
		t.Errorf("IDPolicy = %v", cfg.IDPolicy)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.AuthEnabled() {
		t.Error("auth should be disabled by default")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"GUESTLIST_ADDR":               ":9090",
		"GUESTLIST_STORAGE":            "memory",
		"GUESTLIST_STORAGE_KEY":        "party",
		"GUESTLIST_ID_POLICY":          "length",
		"GUESTLIST_JWT_SECRET":         "s3cret",
		"GUESTLIST_HOST_PASSWORD_HASH": "$2a$10$abcdefghijklmnopqrstuu",
		"GUESTLIST_TOKEN_TTL":          "90m",
		"LOG_LEVEL":                    "debug",
	}))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Addr != ":9090" || cfg.Storage != StorageMemory || cfg.StorageKey != "party" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.IDPolicy != guests.LengthIDs {
		t.Errorf("IDPolicy = %v", cfg.IDPolicy)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if !cfg.AuthEnabled() {
		t.Error("auth should be enabled")
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(envMap(map[string]string{
		"GUESTLIST_STORAGE":            "redis",
		"GUESTLIST_ID_POLICY":          "random",
		"GUESTLIST_TOKEN_TTL":          "soon",
		"GUESTLIST_HOST_PASSWORD_HASH": "$2a$10$abcdefghijklmnopqrstuu",
	}))
	if err == nil {
		t.Fatal("expected error")
	}

	for _, want := range []string{
		"GUESTLIST_STORAGE",
		"GUESTLIST_ID_POLICY",
		"GUESTLIST_TOKEN_TTL",
		"GUESTLIST_JWT_SECRET",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
