package config

import "strings"

// normalize trims whitespace and fills empty fields from the defaults so a
// sparse config file still yields a complete Config.
func (c *Config) normalize() {
	defaults := Default()

	c.Paths.WorkDir = strings.TrimSpace(c.Paths.WorkDir)
	if c.Paths.WorkDir == "" {
		c.Paths.WorkDir = defaults.Paths.WorkDir
	}
	c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir)
	if c.Paths.LogDir == "" {
		c.Paths.LogDir = defaults.Paths.LogDir
	}

	if c.Subtitles.MaxCharsPerLine == 0 {
		c.Subtitles.MaxCharsPerLine = defaults.Subtitles.MaxCharsPerLine
	}
	if c.Subtitles.RecommendedCharsPerLine == 0 {
		c.Subtitles.RecommendedCharsPerLine = defaults.Subtitles.RecommendedCharsPerLine
	}
	if c.Subtitles.MaxCharsPerFragment == 0 {
		c.Subtitles.MaxCharsPerFragment = defaults.Subtitles.MaxCharsPerFragment
	}
	if c.Subtitles.QuotationSplitThreshold == 0 {
		c.Subtitles.QuotationSplitThreshold = defaults.Subtitles.QuotationSplitThreshold
	}

	if c.Timing.MinDisplayDuration == 0 {
		c.Timing.MinDisplayDuration = defaults.Timing.MinDisplayDuration
	}
	if c.Timing.NextStartMargin == 0 {
		c.Timing.NextStartMargin = defaults.Timing.NextStartMargin
	}
	if c.Timing.LastCueExtension == 0 {
		c.Timing.LastCueExtension = defaults.Timing.LastCueExtension
	}
	if c.Timing.FPS == 0 {
		c.Timing.FPS = defaults.Timing.FPS
	}

	c.Runs.DBPath = strings.TrimSpace(c.Runs.DBPath)
	if c.Runs.DBPath == "" {
		c.Runs.DBPath = defaults.Runs.DBPath
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
}
