package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the top-level configuration loaded from file/env. Every value
// can also be overridden per-invocation by CLI flags.
type Config struct {
	// Scope selects which journals to open: "local", "system", "user" or
	// "runtime".
	Scope string `json:"scope"`
	// Directory, when set, opens journal files under this directory
	// instead of the default machine journal.
	Directory string `json:"directory"`
	// PollIntervalMs bounds each blocking wait in follow mode.
	PollIntervalMs int `json:"pollIntervalMs"`
	// DefaultLimit caps range reads when no explicit limit is given.
	DefaultLimit int `json:"defaultLimit"`
	// CursorFile is where follow mode persists its resume cursor. Empty
	// disables persistence.
	CursorFile string `json:"cursorFile"`
	// HTTPAddr is the gateway listen address.
	HTTPAddr string `json:"httpAddr"`
	// Output selects the CLI render format: "short" or "json".
	Output    string `json:"output"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Scope:          "local",
		PollIntervalMs: 250,
		DefaultLimit:   100,
		HTTPAddr:       ":19531",
		Output:         "short",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
