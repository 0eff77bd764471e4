// Package cmdutil holds shared helpers for the CLI commands: path
// resolution and construction of the analysis pipeline from loaded
// configuration.
package cmdutil

import (
	"path/filepath"

	"github.com/leefowlercu/docweave/internal/config"
)

// ResolvePath expands "~" and returns an absolute, cleaned path.
// Empty input returns an empty string.
func ResolvePath(path string) (string, error) {
	expanded := config.ExpandPath(path)
	if expanded == "" {
		return "", nil
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(absPath), nil
}
