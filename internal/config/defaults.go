package config

// Default returns a Config populated with the stock settings.
func Default() *Config {
	return &Config{
		Paths: Paths{
			WorkDir: "~/jimaku",
			LogDir:  "~/jimaku/logs",
		},
		Subtitles: Subtitles{
			MaxCharsPerLine:         18,
			RecommendedCharsPerLine: 16,
			MaxCharsPerFragment:     36,
			QuotationSplitThreshold: 36,
		},
		Timing: Timing{
			MinDisplayDuration:   1.0,
			SentenceEndExtension: true,
			NextStartMargin:      0.3,
			LastCueExtension:     0.5,
			FPS:                  30,
		},
		Output: Output{
			WriteTimingJSON: true,
			ValidateSRT:     true,
		},
		Runs: Runs{
			Enabled: true,
			DBPath:  "~/jimaku/runs.db",
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}
