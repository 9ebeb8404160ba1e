package sheets

import (
	"context"
	"fmt"
	"time"

	"onboard/internal/config"
	"onboard/internal/roster"
)

// Source yields employees who start within the onboarding window. Fetch and
// decode failures surface as errors so callers can tell "no new employees"
// from "could not determine"; skipping malformed rows stays silent.
type Source struct {
	client     *Client
	cellRange  string
	windowDays int
}

// NewSource builds a roster source from configuration.
func NewSource(cfg *config.Config, opts ...Option) (*Source, error) {
	if cfg == nil {
		return nil, fmt.Errorf("sheets source requires config")
	}
	clientOpts := append([]Option{
		WithBaseURL(cfg.Sheets.BaseURL),
		WithTimeout(time.Duration(cfg.Sheets.RequestTimeout) * time.Second),
	}, opts...)
	client, err := New(cfg.Sheets.SpreadsheetID, cfg.Sheets.APIKey, clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Source{
		client:     client,
		cellRange:  cfg.Sheets.Range,
		windowDays: cfg.Workflow.WindowDays,
	}, nil
}

// NewEmployees returns the employees starting within the window, in sheet
// row order. The first row is assumed to be a header and skipped.
func (s *Source) NewEmployees(ctx context.Context, today time.Time) ([]roster.Employee, error) {
	rows, err := s.client.Values(ctx, s.cellRange)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	var employees []roster.Employee
	for _, row := range rows[1:] {
		emp, ok := roster.ParseRow(row)
		if !ok {
			continue
		}
		if !roster.StartsWithin(emp.StartDate, today, s.windowDays) {
			continue
		}
		employees = append(employees, emp)
	}
	return employees, nil
}
