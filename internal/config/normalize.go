package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSheets()
	c.normalizeMail()
	c.normalizeSlack()
	c.normalizeWorkflow()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ChecklistDir) == "" {
		c.Paths.ChecklistDir = defaultChecklistDir
	}
	if c.Paths.ChecklistDir, err = expandPath(c.Paths.ChecklistDir); err != nil {
		return fmt.Errorf("paths.checklist_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSheets() {
	c.Sheets.SpreadsheetID = envOverride("SHEETS_ID", c.Sheets.SpreadsheetID)
	c.Sheets.APIKey = envOverride("SHEETS_API_KEY", c.Sheets.APIKey)
	c.Sheets.BaseURL = strings.TrimRight(strings.TrimSpace(c.Sheets.BaseURL), "/")
	if c.Sheets.BaseURL == "" {
		c.Sheets.BaseURL = defaultSheetsBaseURL
	}
	c.Sheets.Range = strings.TrimSpace(c.Sheets.Range)
	if c.Sheets.Range == "" {
		c.Sheets.Range = defaultSheetsRange
	}
	if c.Sheets.RequestTimeout <= 0 {
		c.Sheets.RequestTimeout = defaultSheetsRequestTimeout
	}
}

func (c *Config) normalizeMail() {
	c.Mail.Account = envOverride("GMAIL_USER", c.Mail.Account)
	c.Mail.AppPassword = envOverride("GMAIL_APP_PASSWORD", c.Mail.AppPassword)
	c.Mail.Host = strings.TrimSpace(c.Mail.Host)
	if c.Mail.Host == "" {
		c.Mail.Host = defaultMailHost
	}
	if c.Mail.Port <= 0 {
		c.Mail.Port = defaultMailPort
	}
	if c.Mail.SendTimeout <= 0 {
		c.Mail.SendTimeout = defaultMailSendTimeout
	}
	c.Mail.FromName = strings.TrimSpace(c.Mail.FromName)
	if c.Mail.FromName == "" {
		c.Mail.FromName = defaultMailFromName
	}
}

func (c *Config) normalizeSlack() {
	c.Slack.WebhookURL = envOverride("SLACK_WEBHOOK", c.Slack.WebhookURL)
	if c.Slack.RequestTimeout <= 0 {
		c.Slack.RequestTimeout = defaultSlackRequestTimeout
	}
}

func (c *Config) normalizeWorkflow() {
	if c.Workflow.WindowDays <= 0 {
		c.Workflow.WindowDays = defaultWindowDays
	}
	c.Workflow.MetricsFile = strings.TrimSpace(c.Workflow.MetricsFile)
	if c.Workflow.MetricsFile == "" {
		c.Workflow.MetricsFile = defaultMetricsFile
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// envOverride returns the environment value when set and non-empty,
// otherwise the current value.
func envOverride(key, current string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(current)
}
