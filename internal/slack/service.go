package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"onboard/internal/config"
	"onboard/internal/roster"
)

const userAgent = "Onboard-Go/0.1.0"

// Service defines the chat notification surface exposed to the workflow.
type Service interface {
	AnnounceHire(ctx context.Context, emp roster.Employee) error
	Test(ctx context.Context) error
}

// NewService builds a notifier backed by the configured webhook. When no
// webhook is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	if cfg == nil {
		return noopService{}
	}
	webhook := strings.TrimSpace(cfg.Slack.WebhookURL)
	if webhook == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Slack.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &webhookService{
		webhook: webhook,
		client:  &http.Client{Timeout: timeout},
	}
}

// message is the webhook payload shape Slack expects.
type message struct {
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type attachment struct {
	Color  string  `json:"color,omitempty"`
	Fields []field `json:"fields,omitempty"`
}

type field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type webhookService struct {
	webhook string
	client  *http.Client
}

func (s *webhookService) AnnounceHire(ctx context.Context, emp roster.Employee) error {
	msg := message{
		Text: "🎉 New Team Member Alert!",
		Attachments: []attachment{{
			Color: "good",
			Fields: []field{
				{Title: "Name", Value: emp.Name, Short: true},
				{Title: "Department", Value: roster.CanonicalDepartment(emp.Department), Short: true},
				{Title: "Start Date", Value: emp.StartDate, Short: true},
				{Title: "Manager", Value: emp.Manager, Short: true},
			},
		}},
	}
	return s.post(ctx, msg)
}

func (s *webhookService) Test(ctx context.Context) error {
	return s.post(ctx, message{Text: "🧪 Onboard notification test"})
}

func (s *webhookService) post(ctx context.Context, msg message) error {
	if s == nil || s.client == nil {
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhook, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send slack notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("slack returned %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) AnnounceHire(context.Context, roster.Employee) error { return nil }

func (noopService) Test(context.Context) error { return nil }
