package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the root configuration for the subtitle segmenter.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Subtitles Subtitles `toml:"subtitles"`
	Timing    Timing    `toml:"timing"`
	Output    Output    `toml:"output"`
	Runs      Runs      `toml:"runs"`
	Logging   Logging   `toml:"logging"`
}

// Paths holds filesystem locations used by the tool.
type Paths struct {
	WorkDir string `toml:"work_dir"`
	LogDir  string `toml:"log_dir"`
}

// Subtitles controls sentence splitting and line wrapping.
type Subtitles struct {
	MaxCharsPerLine         int `toml:"max_chars_per_line"`
	RecommendedCharsPerLine int `toml:"recommended_chars_per_line"`
	MaxCharsPerFragment     int `toml:"max_chars_per_fragment"`
	QuotationSplitThreshold int `toml:"quotation_split_threshold"`
}

// Timing controls cue duration adjustment.
type Timing struct {
	MinDisplayDuration   float64 `toml:"min_display_duration"`
	SentenceEndExtension bool    `toml:"sentence_end_extension"`
	NextStartMargin      float64 `toml:"next_start_margin"`
	LastCueExtension     float64 `toml:"last_cue_extension"`
	FPS                  float64 `toml:"fps"`
}

// Output controls which artifacts a run writes.
type Output struct {
	WriteTimingJSON bool `toml:"write_timing_json"`
	ValidateSRT     bool `toml:"validate_srt"`
}

// Runs configures the local run ledger.
type Runs struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path"`
}

// Logging configures log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Load reads configuration from path. When path is empty the standard
// locations are searched. It returns the config, the path that was used, and
// whether a file was actually found (defaults are returned either way).
func Load(path string) (*Config, string, bool, error) {
	resolved, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()

	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, resolved, true, fmt.Errorf("parse config %s: %w", resolved, err)
		}
		cfg.normalize()
		if err := cfg.Validate(); err != nil {
			return nil, resolved, true, err
		}
		return cfg, resolved, true, nil
	case errors.Is(err, fs.ErrNotExist):
		if path != "" {
			return nil, resolved, false, fmt.Errorf("config file not found: %s", resolved)
		}
		cfg.normalize()
		return cfg, resolved, false, nil
	default:
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return ExpandPath(path)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		candidate := filepath.Join(home, ".config", "jimaku", "config.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, nil
		}
	}

	if _, statErr := os.Stat("jimaku.toml"); statErr == nil {
		abs, absErr := filepath.Abs("jimaku.toml")
		if absErr == nil {
			return abs, nil
		}
		return "jimaku.toml", nil
	}

	if home != "" {
		return filepath.Join(home, ".config", "jimaku", "config.toml"), nil
	}
	return "jimaku.toml", nil
}

// DefaultConfigPath returns the standard location for the user config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "jimaku", "config.toml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}

// CreateSample writes the embedded sample config to path, refusing to
// overwrite an existing file.
func CreateSample(path string) error {
	resolved, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(resolved); err == nil {
		return fmt.Errorf("config file already exists: %s", resolved)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(resolved, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// LogFilePath returns the resolved path of the run log file.
func (c *Config) LogFilePath() (string, error) {
	dir, err := ExpandPath(c.Paths.LogDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jimaku.log"), nil
}

// RunsDBPath returns the resolved path of the run ledger database.
func (c *Config) RunsDBPath() (string, error) {
	return ExpandPath(c.Runs.DBPath)
}
