package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values the pipeline cannot work with.
func (c *Config) Validate() error {
	var problems []string

	ensurePositive := func(name string, value int) {
		if value <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %d", name, value))
		}
	}
	ensurePositiveFloat := func(name string, value float64) {
		if value <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %g", name, value))
		}
	}

	ensurePositive("subtitles.max_chars_per_line", c.Subtitles.MaxCharsPerLine)
	ensurePositive("subtitles.recommended_chars_per_line", c.Subtitles.RecommendedCharsPerLine)
	ensurePositive("subtitles.max_chars_per_fragment", c.Subtitles.MaxCharsPerFragment)
	ensurePositive("subtitles.quotation_split_threshold", c.Subtitles.QuotationSplitThreshold)

	if c.Subtitles.RecommendedCharsPerLine > c.Subtitles.MaxCharsPerLine {
		problems = append(problems, fmt.Sprintf(
			"subtitles.recommended_chars_per_line (%d) must not exceed subtitles.max_chars_per_line (%d)",
			c.Subtitles.RecommendedCharsPerLine, c.Subtitles.MaxCharsPerLine))
	}

	ensurePositiveFloat("timing.min_display_duration", c.Timing.MinDisplayDuration)
	ensurePositiveFloat("timing.fps", c.Timing.FPS)
	if c.Timing.NextStartMargin < 0 {
		problems = append(problems, fmt.Sprintf("timing.next_start_margin must not be negative, got %g", c.Timing.NextStartMargin))
	}
	if c.Timing.LastCueExtension < 0 {
		problems = append(problems, fmt.Sprintf("timing.last_cue_extension must not be negative, got %g", c.Timing.LastCueExtension))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
