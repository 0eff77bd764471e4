// Package config loads, validates, and exposes the application
// configuration. Values come from a YAML config file, DOCWEAVE_*
// environment variables, and built-in defaults, in that priority order.
package config

import "sync"

var (
	mu     sync.RWMutex
	loaded *Config
)

// Init loads the configuration and makes it available via Get. Call once
// during startup, before any component reads config.
func Init() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	mu.Lock()
	loaded = cfg
	mu.Unlock()
	return nil
}

// InitFromPath is Init reading a specific config file.
func InitFromPath(path string) error {
	cfg, err := LoadFromPath(path)
	if err != nil {
		return err
	}

	mu.Lock()
	loaded = cfg
	mu.Unlock()
	return nil
}

// Reset clears the loaded configuration. Intended for tests.
func Reset() {
	mu.Lock()
	loaded = nil
	mu.Unlock()
}

// Get returns the loaded configuration. Before Init it returns the
// defaults, so tests and early startup code never see a nil config.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if loaded == nil {
		cfg := NewDefaultConfig()
		return &cfg
	}
	return loaded
}
