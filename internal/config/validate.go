package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is structurally usable. Placeholder
// credentials are deliberately accepted; runs against them fail at the
// external service with a clear error.
func (c *Config) Validate() error {
	if err := c.validateSheets(); err != nil {
		return err
	}
	if err := c.validateMail(); err != nil {
		return err
	}
	if err := c.validateSlack(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSheets() error {
	if strings.TrimSpace(c.Sheets.SpreadsheetID) == "" {
		return errors.New("sheets.spreadsheet_id must be set (or export SHEETS_ID)")
	}
	if strings.TrimSpace(c.Sheets.APIKey) == "" {
		return errors.New("sheets.api_key must be set (or export SHEETS_API_KEY)")
	}
	if _, err := url.ParseRequestURI(c.Sheets.BaseURL); err != nil {
		return fmt.Errorf("sheets.base_url is not a valid URL: %w", err)
	}
	if c.Sheets.RequestTimeout <= 0 {
		return errors.New("sheets.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateMail() error {
	if strings.TrimSpace(c.Mail.Account) == "" {
		return errors.New("mail.account must be set (or export GMAIL_USER)")
	}
	if strings.TrimSpace(c.Mail.AppPassword) == "" {
		return errors.New("mail.app_password must be set (or export GMAIL_APP_PASSWORD)")
	}
	if strings.TrimSpace(c.Mail.Host) == "" {
		return errors.New("mail.host must be set")
	}
	if c.Mail.Port <= 0 || c.Mail.Port > 65535 {
		return fmt.Errorf("mail.port must be a valid TCP port, got %d", c.Mail.Port)
	}
	if c.Mail.SendTimeout <= 0 {
		return errors.New("mail.send_timeout must be positive")
	}
	return nil
}

func (c *Config) validateSlack() error {
	webhook := strings.TrimSpace(c.Slack.WebhookURL)
	if webhook == "" {
		return errors.New("slack.webhook_url must be set (or export SLACK_WEBHOOK)")
	}
	parsed, err := url.ParseRequestURI(webhook)
	if err != nil {
		return fmt.Errorf("slack.webhook_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("slack.webhook_url must use http or https, got %q", parsed.Scheme)
	}
	if c.Slack.RequestTimeout <= 0 {
		return errors.New("slack.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.WindowDays <= 0 {
		return errors.New("workflow.window_days must be positive")
	}
	if strings.TrimSpace(c.Workflow.MetricsFile) == "" {
		return errors.New("workflow.metrics_file must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
