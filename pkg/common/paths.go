package common

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) if it does not already exist.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("common: creating directory %s: %w", dir, err)
	}
	return nil
}

// WithExt swaps path's extension for ext (ext includes the leading dot).
func WithExt(path, ext string) string {
	base := path[:len(path)-len(filepath.Ext(path))]
	return base + ext
}
