package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"onboard/internal/config"
	"onboard/internal/roster"
)

// Service defines the email surface exposed to the workflow.
type Service interface {
	SendWelcome(ctx context.Context, emp roster.Employee) error
}

// NewService builds an SMTP-backed mail service from configuration.
func NewService(cfg *config.Config) Service {
	if cfg == nil {
		return noopService{}
	}
	return &smtpService{
		host:        cfg.Mail.Host,
		port:        cfg.Mail.Port,
		account:     cfg.Mail.Account,
		appPassword: cfg.Mail.AppPassword,
		fromName:    cfg.Mail.FromName,
		timeout:     time.Duration(cfg.Mail.SendTimeout) * time.Second,
	}
}

// NewNoop returns a mail service that renders nothing and sends nothing,
// used by demo mode.
func NewNoop() Service {
	return noopService{}
}

type smtpService struct {
	host        string
	port        int
	account     string
	appPassword string
	fromName    string
	timeout     time.Duration
}

func (s *smtpService) SendWelcome(ctx context.Context, emp roster.Employee) error {
	to := strings.TrimSpace(emp.Email)
	if to == "" {
		return fmt.Errorf("employee %q has no email address", emp.Name)
	}

	body, err := RenderWelcomeBody(emp, s.fromName)
	if err != nil {
		return err
	}
	message := BuildMessage(s.account, s.fromName, to, WelcomeSubject(emp), body)

	timeout := s.timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(sendCtx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial smtp host: %w", err)
	}

	// Bound the whole SMTP conversation; the client has no context support.
	if deadline, ok := sendCtx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("open smtp session: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	auth := smtp.PlainAuth("", s.account, s.appPassword, s.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(s.account); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		writer.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}
	return client.Quit()
}

type noopService struct{}

func (noopService) SendWelcome(context.Context, roster.Employee) error { return nil }
