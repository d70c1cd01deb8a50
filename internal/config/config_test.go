package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Scope != "local" {
		t.Fatalf("scope = %q", cfg.Scope)
	}
	if cfg.DefaultLimit <= 0 || cfg.PollIntervalMs <= 0 {
		t.Fatalf("limits must have positive defaults: %+v", cfg)
	}
	if cfg.HTTPAddr == "" {
		t.Fatalf("gateway address must have a default")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jrnl.json")
	body := `{"scope":"system","defaultLimit":25,"httpAddr":":9090"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scope != "system" || cfg.DefaultLimit != 25 || cfg.HTTPAddr != ":9090" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.PollIntervalMs != Default().PollIntervalMs {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SDJOURNAL_SCOPE", "user")
	t.Setenv("SDJOURNAL_DEFAULT_LIMIT", "7")
	t.Setenv("SDJOURNAL_CURSOR_FILE", "/tmp/cur")
	t.Setenv("SDJOURNAL_POLL_INTERVAL_MS", "not-a-number")

	cfg := Default()
	FromEnv(&cfg)
	if cfg.Scope != "user" || cfg.DefaultLimit != 7 || cfg.CursorFile != "/tmp/cur" {
		t.Fatalf("env overlay not applied: %+v", cfg)
	}
	if cfg.PollIntervalMs != Default().PollIntervalMs {
		t.Fatalf("malformed int should be ignored: %+v", cfg)
	}
}

func TestDefaultCursorDirNotEmpty(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	dir := DefaultCursorDir()
	if dir == "" {
		t.Fatalf("expected a directory")
	}
	if filepath.Base(dir) != "jrnl" {
		t.Fatalf("got %q", dir)
	}
}
