package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"onboard/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent onboarding runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("load run history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No onboarding runs recorded yet")
				return nil
			}

			headers := []string{"Started", "Run ID", "Processed", "Succeeded", "Rate", "Duration", "Fetch Error"}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					shortRunID(run.RunID),
					strconv.Itoa(run.Processed),
					strconv.Itoa(run.Succeeded),
					fmt.Sprintf("%.0f%%", run.SuccessRate*100),
					run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String(),
					run.FetchError,
				})
			}

			fmt.Fprintln(out, renderTable(headers, rows, 3, 4, 5, 6))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show")
	return cmd
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
