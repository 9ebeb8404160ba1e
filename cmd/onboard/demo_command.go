package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"onboard/internal/checklist"
	"onboard/internal/logging"
	"onboard/internal/mailer"
	"onboard/internal/metrics"
	"onboard/internal/roster"
	"onboard/internal/slack"
	"onboard/internal/workflow"
)

type staticSource struct {
	employees []roster.Employee
}

func (s staticSource) NewEmployees(ctx context.Context, today time.Time) ([]roster.Employee, error) {
	return s.employees, nil
}

// newDemoCommand exercises the full workflow against a canned employee with
// both notification channels stubbed out. Nothing leaves the machine.
func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the workflow offline with a sample employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			sample := roster.Employee{
				Name:       "Jane Smith",
				Email:      "jane.smith@example.com",
				Department: "engineering",
				StartDate:  time.Now().AddDate(0, 0, 3).Format(roster.DateLayout),
				Manager:    "Bob Johnson",
			}

			runner := workflow.NewRunner(
				cfg,
				logging.NewNop(),
				staticSource{employees: []roster.Employee{sample}},
				mailer.NewNoop(),
				slack.NewService(nil),
				metrics.NewRecorder(cfg.MetricsPath()),
				nil,
			)

			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Demo run %s processed %d employee(s)\n\n", summary.RunID, summary.Processed)

			fmt.Fprintf(out, "Subject: %s\n\n", mailer.WelcomeSubject(sample))
			body, err := mailer.RenderWelcomeBody(sample, cfg.Mail.FromName)
			if err != nil {
				return fmt.Errorf("render welcome email: %w", err)
			}
			fmt.Fprintln(out, body)

			fmt.Fprintf(out, "Checklist written to %s\n",
				filepath.Join(cfg.Paths.ChecklistDir, checklist.Filename(sample.Name)))
			fmt.Fprintf(out, "Metrics appended to %s\n", cfg.MetricsPath())
			return nil
		},
	}
}
