package preflight

import (
	"onboard/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Checklist directory", cfg.Paths.ChecklistDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckFreeSpace("Data disk space", cfg.Paths.DataDir),
		CheckWebhookURL(cfg.Slack.WebhookURL),
		CheckMailSettings(cfg.Mail),
	}
	return results
}
