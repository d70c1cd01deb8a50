package config

import (
	"os"
	"path/filepath"
)

// DefaultCursorDir returns the directory where follow-mode cursor files
// live when the caller does not pick one. It prefers XDG state locations
// and falls back to a dotdir in the user's home directory.
func DefaultCursorDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "jrnl")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "."
	}
	if isDir(filepath.Join(homeDir, ".local", "state")) {
		return filepath.Join(homeDir, ".local", "state", "jrnl")
	}
	return filepath.Join(homeDir, ".jrnl")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
