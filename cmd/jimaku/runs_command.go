package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jimaku/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded segmentation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dbPath, err := cfg.RunsDBPath()
			if err != nil {
				return err
			}
			store, err := runs.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			list, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(list))
			for _, run := range list {
				detail := run.SRTPath
				if run.Status == runs.StatusFailed {
					detail = run.Detail
				}
				rows = append(rows, []string{
					run.ID[:8],
					run.CreatedAt.Local().Format(time.DateTime),
					run.Status,
					fmt.Sprintf("%d", run.CueCount),
					fmt.Sprintf("%.1fs", run.TotalDuration),
					detail,
				})
			}
			out := renderTable(
				[]string{"Run", "Created", "Status", "Cues", "Duration", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	return cmd
}
