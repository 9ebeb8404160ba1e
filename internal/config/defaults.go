package config

const (
	defaultDataDir      = "~/.local/share/onboard"
	defaultLogDir       = "~/.local/share/onboard/logs"
	defaultChecklistDir = "~/.local/share/onboard/checklists"

	// Placeholder credentials. A run against these fails at the external
	// service with a clear error rather than at config load.
	defaultMailAccount     = "your_email@gmail.com"
	defaultMailAppPassword = "your_app_password"
	defaultSlackWebhook    = "https://hooks.slack.com/your_webhook"
	defaultSpreadsheetID   = "your_sheet_id"
	defaultSheetsAPIKey    = "your_api_key"

	defaultSheetsBaseURL        = "https://sheets.googleapis.com/v4/spreadsheets"
	defaultSheetsRange          = "Sheet1!A:E"
	defaultSheetsRequestTimeout = 15

	defaultMailHost        = "smtp.gmail.com"
	defaultMailPort        = 587
	defaultMailSendTimeout = 30
	defaultMailFromName    = "HR Team"

	defaultSlackRequestTimeout = 10

	defaultWindowDays  = 7
	defaultMetricsFile = "workflow_metrics.json"

	defaultLogFormat = "text"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:      defaultDataDir,
			LogDir:       defaultLogDir,
			ChecklistDir: defaultChecklistDir,
		},
		Sheets: Sheets{
			SpreadsheetID:  defaultSpreadsheetID,
			APIKey:         defaultSheetsAPIKey,
			BaseURL:        defaultSheetsBaseURL,
			Range:          defaultSheetsRange,
			RequestTimeout: defaultSheetsRequestTimeout,
		},
		Mail: Mail{
			Account:     defaultMailAccount,
			AppPassword: defaultMailAppPassword,
			Host:        defaultMailHost,
			Port:        defaultMailPort,
			SendTimeout: defaultMailSendTimeout,
			FromName:    defaultMailFromName,
		},
		Slack: Slack{
			WebhookURL:     defaultSlackWebhook,
			RequestTimeout: defaultSlackRequestTimeout,
		},
		Workflow: Workflow{
			WindowDays:  defaultWindowDays,
			MetricsFile: defaultMetricsFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
