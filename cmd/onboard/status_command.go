package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"onboard/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and environment readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Configuration", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderStatusLine("Spreadsheet", configKind(cfg.Sheets.SpreadsheetID, "your_sheet_id"),
				fmt.Sprintf("%s (%s)", cfg.Sheets.SpreadsheetID, cfg.Sheets.Range), colorize))
			fmt.Fprintln(out, renderStatusLine("Mail account", configKind(cfg.Mail.Account, "your_email@gmail.com"),
				fmt.Sprintf("%s via %s:%d", cfg.Mail.Account, cfg.Mail.Host, cfg.Mail.Port), colorize))
			fmt.Fprintln(out, renderStatusLine("Slack webhook", configKind(cfg.Slack.WebhookURL, "https://hooks.slack.com/your_webhook"),
				redactWebhook(cfg.Slack.WebhookURL), colorize))
			fmt.Fprintln(out, renderStatusLine("Onboarding window", statusOK,
				fmt.Sprintf("%d days", cfg.Workflow.WindowDays), colorize))
			fmt.Fprintln(out, renderStatusLine("Checklist directory", statusOK, cfg.Paths.ChecklistDir, colorize))
			fmt.Fprintln(out, renderStatusLine("Metrics file", statusOK, cfg.MetricsPath(), colorize))
			fmt.Fprintln(out)

			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, result := range preflight.RunAll(cfg) {
				kind := statusWarn
				if result.Passed {
					kind = statusOK
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			return nil
		},
	}
}

// configKind flags values still carrying the sample-config placeholder.
func configKind(value, placeholder string) statusKind {
	if strings.TrimSpace(value) == "" || value == placeholder {
		return statusWarn
	}
	return statusOK
}

// redactWebhook hides the secret path segment of a webhook URL.
func redactWebhook(webhook string) string {
	webhook = strings.TrimSpace(webhook)
	if webhook == "" {
		return "not configured"
	}
	if idx := strings.Index(webhook, "/services/"); idx >= 0 {
		return webhook[:idx] + "/services/..."
	}
	return webhook
}
