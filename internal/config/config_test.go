package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
	if exists {
		t.Fatal("exists should be false for missing file")
	}
}

func TestLoadFillsDefaultsForSparseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[subtitles]\nmax_chars_per_line = 20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("exists should be true")
	}
	if resolved != path {
		t.Fatalf("resolved path: got %s, want %s", resolved, path)
	}
	if cfg.Subtitles.MaxCharsPerLine != 20 {
		t.Fatalf("max_chars_per_line: got %d, want 20", cfg.Subtitles.MaxCharsPerLine)
	}
	if cfg.Subtitles.RecommendedCharsPerLine != 16 {
		t.Fatalf("recommended_chars_per_line default missing: got %d", cfg.Subtitles.RecommendedCharsPerLine)
	}
	if cfg.Timing.MinDisplayDuration != 1.0 {
		t.Fatalf("min_display_duration default missing: got %g", cfg.Timing.MinDisplayDuration)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("logging level default missing: got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[subtitles]\nrecommended_chars_per_line = 30\nmax_chars_per_line = 18\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error when recommended exceeds max")
	}
	if !strings.Contains(err.Error(), "recommended_chars_per_line") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := CreateSample(path); err == nil {
		t.Fatal("expected error on second CreateSample")
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ExpandPath("~/jimaku/runs.db")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	want := filepath.Join(home, "jimaku", "runs.db")
	if got != want {
		t.Fatalf("ExpandPath: got %s, want %s", got, want)
	}
}
