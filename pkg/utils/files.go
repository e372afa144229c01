package utils

import (
	"path/filepath"
)

// ResolvePath resolves a configured file path. Absolute paths are returned
// cleaned; relative paths are resolved against the config directory.
func ResolvePath(path string, configDir string) string {
	if filepath.IsAbs(path) || configDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(configDir, path)
}
