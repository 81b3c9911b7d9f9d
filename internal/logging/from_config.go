package logging

import (
	"log/slog"

	"jimaku/internal/config"
)

// NewFromConfig builds the standard logger for a loaded configuration: the
// configured format, written to stdout and mirrored to a file in the log
// directory.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	logFile, err := cfg.LogFilePath()
	if err != nil {
		return nil, err
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{"stdout", logFile},
	})
}
