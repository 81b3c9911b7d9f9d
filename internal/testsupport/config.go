// Package testsupport provides shared helpers for package tests: temp-backed
// configurations and aligner fixture files.
package testsupport

import (
	"path/filepath"
	"testing"

	"jimaku/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.WorkDir = filepath.Join(base, "work")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Runs.DBPath = filepath.Join(base, "runs.db")

	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxCharsPerLine overrides the absolute line cap on the test config.
func WithMaxCharsPerLine(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Subtitles.MaxCharsPerLine = n
	}
}

// WithRunsDisabled turns off the run ledger on the test config.
func WithRunsDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Runs.Enabled = false
	}
}
