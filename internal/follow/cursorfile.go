package follow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadCursor reads a cursor string from path. A missing file is not an
// error; it returns an empty cursor, meaning "no resume position".
func LoadCursor(path string) (string, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read cursor file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// SaveCursor durably stores a cursor string at path via temp file and
// rename. An empty cursor is ignored so a crash early in a run cannot
// regress an existing resume position.
func SaveCursor(path, cursor string) error {
	if cursor == "" {
		return nil
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cursor-*")
	if err != nil {
		return fmt.Errorf("create cursor temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(cursor + "\n"); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write cursor: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync cursor: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close cursor temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename cursor file: %w", err)
	}
	return nil
}
