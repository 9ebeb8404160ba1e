package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"onboard/internal/history"
	"onboard/internal/logging"
	"onboard/internal/mailer"
	"onboard/internal/metrics"
	"onboard/internal/preflight"
	"onboard/internal/sheets"
	"onboard/internal/slack"
	"onboard/internal/workflow"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var skipPreflight bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one onboarding pass against the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			// One run at a time; overlapping cron triggers would double-send.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "onboard.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another onboarding run is already in progress (lock %s)", lock.Path())
			}
			defer lock.Unlock()

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			if !skipPreflight {
				for _, result := range preflight.RunAll(cfg) {
					if result.Passed {
						logger.Debug("preflight check passed", logging.String("check", result.Name))
						continue
					}
					logger.Warn("preflight check failed",
						logging.String("check", result.Name),
						logging.String("detail", result.Detail))
				}
			}

			source, err := sheets.NewSource(cfg)
			if err != nil {
				return fmt.Errorf("configure roster source: %w", err)
			}

			store, err := history.Open(cfg)
			if err != nil {
				logger.Warn("run history unavailable", logging.Error(err))
				store = nil
			} else {
				defer store.Close()
			}

			var recorder workflow.HistoryRecorder
			if store != nil {
				recorder = store
			}

			runner := workflow.NewRunner(
				cfg,
				logger,
				source,
				mailer.NewService(cfg),
				slack.NewService(cfg),
				metrics.NewRecorder(cfg.MetricsPath()),
				recorder,
			)

			summary, err := runner.Run(cmd.Context())
			printSummary(cmd, summary)
			return err
		},
	}

	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip environment preflight checks")
	return cmd
}

func printSummary(cmd *cobra.Command, summary workflow.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s finished in %s\n", summary.RunID, summary.Duration.Round(time.Millisecond))
	if summary.FetchErr != nil {
		fmt.Fprintf(out, "Roster fetch failed: %v\n", summary.FetchErr)
		return
	}
	if summary.Processed == 0 {
		fmt.Fprintln(out, "No new employees in the onboarding window")
		return
	}
	fmt.Fprintf(out, "Processed %d employee(s), %d fully onboarded (%.0f%%)\n",
		summary.Processed, summary.Succeeded, summary.SuccessRate*100)
}
