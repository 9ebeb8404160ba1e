package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"onboard/internal/config"
)

func TestLoadDefaultsApplyPlaceholdersAndExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	for _, key := range []string{"GMAIL_USER", "GMAIL_APP_PASSWORD", "SLACK_WEBHOOK", "SHEETS_ID", "SHEETS_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "onboard")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.ChecklistDir != filepath.Join(wantData, "checklists") {
		t.Fatalf("unexpected checklist dir: %q", cfg.Paths.ChecklistDir)
	}
	if cfg.Mail.Account != "your_email@gmail.com" {
		t.Fatalf("expected placeholder mail account, got %q", cfg.Mail.Account)
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 587 {
		t.Fatalf("unexpected mail submission endpoint: %s:%d", cfg.Mail.Host, cfg.Mail.Port)
	}
	if cfg.Sheets.Range != "Sheet1!A:E" {
		t.Fatalf("unexpected sheets range: %q", cfg.Sheets.Range)
	}
	if cfg.Workflow.WindowDays != 7 {
		t.Fatalf("unexpected onboarding window: %d", cfg.Workflow.WindowDays)
	}
	if cfg.MetricsPath() != filepath.Join(wantData, "workflow_metrics.json") {
		t.Fatalf("unexpected metrics path: %q", cfg.MetricsPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir, cfg.Paths.ChecklistDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be a directory", dir)
		}
	}
}

func TestLoadEnvironmentOverridesWinOverFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("GMAIL_USER", "hr@corp.example")
	t.Setenv("GMAIL_APP_PASSWORD", "env-secret")
	t.Setenv("SLACK_WEBHOOK", "https://hooks.slack.com/services/T/B/X")
	t.Setenv("SHEETS_ID", "env-sheet")
	t.Setenv("SHEETS_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	body := strings.Join([]string{
		"[mail]",
		`account = "file@corp.example"`,
		`app_password = "file-secret"`,
		"[sheets]",
		`spreadsheet_id = "file-sheet"`,
		`api_key = "file-key"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Mail.Account != "hr@corp.example" {
		t.Fatalf("expected env override for mail account, got %q", cfg.Mail.Account)
	}
	if cfg.Mail.AppPassword != "env-secret" {
		t.Fatalf("expected env override for app password, got %q", cfg.Mail.AppPassword)
	}
	if cfg.Slack.WebhookURL != "https://hooks.slack.com/services/T/B/X" {
		t.Fatalf("expected env override for webhook, got %q", cfg.Slack.WebhookURL)
	}
	if cfg.Sheets.SpreadsheetID != "env-sheet" || cfg.Sheets.APIKey != "env-key" {
		t.Fatalf("expected env overrides for sheets, got %q/%q", cfg.Sheets.SpreadsheetID, cfg.Sheets.APIKey)
	}
}

func TestLoadEmptyEnvDoesNotOverrideFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("GMAIL_USER", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[mail]\naccount = \"file@corp.example\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Mail.Account != "file@corp.example" {
		t.Fatalf("expected file value to survive empty env var, got %q", cfg.Mail.Account)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantSub string
	}{
		{
			name:    "bad mail port",
			mutate:  func(c *config.Config) { c.Mail.Port = 70000 },
			wantSub: "mail.port",
		},
		{
			name:    "bad webhook scheme",
			mutate:  func(c *config.Config) { c.Slack.WebhookURL = "ftp://hooks.slack.com/x" },
			wantSub: "slack.webhook_url",
		},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "fancy" },
			wantSub: "logging.format",
		},
		{
			name:    "missing spreadsheet id",
			mutate:  func(c *config.Config) { c.Sheets.SpreadsheetID = " " },
			wantSub: "sheets.spreadsheet_id",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantSub, err)
			}
		})
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Sheets.SpreadsheetID == "" {
		t.Fatal("expected sample to carry a spreadsheet id")
	}
}
