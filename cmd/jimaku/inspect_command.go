package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jimaku/internal/alignment"
	"jimaku/internal/config"
	"jimaku/internal/logging"
	"jimaku/internal/segment"
	"jimaku/internal/srt"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <timing.json>",
		Short: "Preview the cues a timing file would produce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputPath, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			sections, err := alignment.LoadFile(inputPath)
			if err != nil {
				return err
			}

			cues := segment.BuildCues(sections, segment.OptionsFromConfig(cfg), logging.NewNop())
			if len(cues) == 0 {
				return fmt.Errorf("no cues produced from %s", inputPath)
			}

			rows := make([][]string, 0, len(cues))
			for _, cue := range cues {
				rows = append(rows, []string{
					fmt.Sprintf("%d", cue.Index),
					srt.FormatTimestamp(cue.Start),
					srt.FormatTimestamp(cue.End),
					fmt.Sprintf("%.2fs", cue.Duration()),
					cue.Line1,
					cue.Line2,
				})
			}
			out := renderTable(
				[]string{"#", "Start", "End", "Duration", "Line 1", "Line 2"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}
