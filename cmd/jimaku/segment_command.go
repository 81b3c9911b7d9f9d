package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jimaku/internal/alignment"
	"jimaku/internal/config"
	"jimaku/internal/logging"
	"jimaku/internal/runs"
	"jimaku/internal/segment"
	"jimaku/internal/srt"
)

func newSegmentCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var skipTimingJSON bool
	var skipLedger bool

	cmd := &cobra.Command{
		Use:   "segment <timing.json>",
		Short: "Generate an SRT file from aligner timing data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputPath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			srtPath, err := resolveOutputPath(inputPath, outputFlag)
			if err != nil {
				return err
			}

			cues, runErr := runSegmentation(cfg, logger, inputPath, srtPath, !skipTimingJSON)

			if cfg.Runs.Enabled && !skipLedger {
				if err := recordRun(cmd.Context(), cfg, inputPath, srtPath, cues, runErr); err != nil {
					logger.Warn("could not record run", logging.Error(err))
				}
			}
			if runErr != nil {
				return runErr
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d cues to %s\n", len(cues), srtPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "SRT output path (defaults next to the input)")
	cmd.Flags().BoolVar(&skipTimingJSON, "no-timing-json", false, "Skip writing the timing JSON artifact")
	cmd.Flags().BoolVar(&skipLedger, "no-ledger", false, "Skip recording this run in the ledger")
	return cmd
}

func resolveOutputPath(inputPath, outputFlag string) (string, error) {
	if strings.TrimSpace(outputFlag) != "" {
		return config.ExpandPath(outputFlag)
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), base+".srt"), nil
}

func runSegmentation(cfg *config.Config, logger *slog.Logger, inputPath, srtPath string, writeTimingJSON bool) ([]segment.SubtitleEntry, error) {
	sections, err := alignment.LoadFile(inputPath)
	if err != nil {
		return nil, err
	}

	cues := segment.BuildCues(sections, segment.OptionsFromConfig(cfg), logger)
	if len(cues) == 0 {
		return nil, fmt.Errorf("no cues produced from %s", inputPath)
	}

	if err := srt.WriteFile(srtPath, cues); err != nil {
		return nil, err
	}
	if writeTimingJSON && cfg.Output.WriteTimingJSON {
		jsonPath := strings.TrimSuffix(srtPath, filepath.Ext(srtPath)) + "_timing.json"
		if err := srt.WriteTimingJSON(jsonPath, cues); err != nil {
			return nil, err
		}
	}

	if cfg.Output.ValidateSRT {
		if issues := srt.Validate(srt.Render(cues)); len(issues) > 0 {
			for _, issue := range issues {
				logger.Warn("srt validation issue", logging.String(logging.FieldReason, issue))
			}
		}
	}
	return cues, nil
}

func recordRun(ctx context.Context, cfg *config.Config, inputPath, srtPath string, cues []segment.SubtitleEntry, runErr error) error {
	dbPath, err := cfg.RunsDBPath()
	if err != nil {
		return err
	}
	store, err := runs.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run := runs.Run{
		InputPath: inputPath,
		SRTPath:   srtPath,
		CueCount:  len(cues),
		Status:    runs.StatusCompleted,
	}
	if len(cues) > 0 {
		run.TotalDuration = cues[len(cues)-1].End
	}
	if runErr != nil {
		run.Status = runs.StatusFailed
		run.Detail = runErr.Error()
	}
	_, err = store.Record(ctx, run)
	return err
}
