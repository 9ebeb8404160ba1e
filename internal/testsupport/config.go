package testsupport

import (
	"path/filepath"
	"testing"

	"onboard/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ChecklistDir = filepath.Join(base, "checklists")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	return builder.cfg
}

// WithWebhook sets the chat webhook URL on the test config.
func WithWebhook(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Slack.WebhookURL = url
	}
}

// WithSheets overrides spreadsheet credentials on the test config.
func WithSheets(spreadsheetID, apiKey string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sheets.SpreadsheetID = spreadsheetID
		b.cfg.Sheets.APIKey = apiKey
	}
}

// WithWindowDays overrides the onboarding window on the test config.
func WithWindowDays(days int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Workflow.WindowDays = days
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
