package config

import (
	"os"
	"strconv"
)

// FromEnv overlays SDJOURNAL_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("SDJOURNAL_SCOPE"); v != "" {
		cfg.Scope = v
	}
	if v := os.Getenv("SDJOURNAL_DIRECTORY"); v != "" {
		cfg.Directory = v
	}
	if v := os.Getenv("SDJOURNAL_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PollIntervalMs = n
		}
	}
	if v := os.Getenv("SDJOURNAL_DEFAULT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultLimit = n
		}
	}
	if v := os.Getenv("SDJOURNAL_CURSOR_FILE"); v != "" {
		cfg.CursorFile = v
	}
	if v := os.Getenv("SDJOURNAL_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SDJOURNAL_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SDJOURNAL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SDJOURNAL_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
