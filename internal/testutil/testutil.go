// Package testutil provides testing utilities for isolated test environments.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leefowlercu/docweave/internal/config"
)

// TestEnv provides an isolated test environment with its own config
// directory, store path, and log file.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
}

// NewTestEnv creates an isolated test environment. Environment variables
// override every path-bearing config value so parallel tests across
// packages never collide. Cleanup is automatic via t.Cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	configDir := filepath.Join(t.TempDir(), "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create test config dir: %v", err)
	}

	t.Setenv("DOCWEAVE_CONFIG_DIR", configDir)
	t.Setenv("DOCWEAVE_LOG_FILE", filepath.Join(configDir, "docweave.log"))
	t.Setenv("DOCWEAVE_STORE_PATH", filepath.Join(configDir, "docweave.db"))

	config.Reset()
	if err := config.Init(); err != nil {
		t.Fatalf("failed to initialize test config: %v", err)
	}

	t.Cleanup(config.Reset)

	return &TestEnv{t: t, ConfigDir: configDir}
}

// StorePath returns the path where the test vector store will be created.
func (e *TestEnv) StorePath() string {
	return filepath.Join(e.ConfigDir, "docweave.db")
}

// CreateTestDir creates a directory within the test environment's temp
// space and returns its absolute path.
func (e *TestEnv) CreateTestDir(name string) string {
	e.t.Helper()

	dir := filepath.Join(e.t.TempDir(), "testdata", name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("failed to create test dir %s: %v", name, err)
	}
	return dir
}

// CreateTestFile creates a file with the given content and returns its
// absolute path.
func (e *TestEnv) CreateTestFile(dir, name, content string) string {
	e.t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to create test file %s: %v", path, err)
	}
	return path
}
