package dip

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Built-in notification channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// MessageSender is the abstraction the notification service depends
// on. High-level policy (what to notify) never imports low-level
// detail (how bytes reach an inbox or a phone).
type MessageSender interface {
	// Channel returns the channel name this sender serves.
	Channel() string

	// Send delivers the message body to the recipient.
	Send(ctx context.Context, recipient, body string) error
}

// EmailSender delivers messages over email. The playground has no real
// SMTP connection; delivery is a structured log line, which is all the
// principle needs to demonstrate.
type EmailSender struct {
	logger *slog.Logger
}

// NewEmailSender creates an EmailSender. A nil logger falls back to
// the default logger.
func NewEmailSender(logger *slog.Logger) *EmailSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailSender{logger: logger.With(slog.String("component", "email_sender"))}
}

// Channel implements MessageSender.
func (s *EmailSender) Channel() string { return ChannelEmail }

// Send implements MessageSender. Email recipients must look like
// addresses.
func (s *EmailSender) Send(ctx context.Context, recipient, body string) error {
	if !strings.Contains(recipient, "@") {
		return fmt.Errorf("invalid email recipient %q", recipient)
	}

	s.logger.InfoContext(ctx, "email delivered",
		slog.String("recipient", recipient),
		slog.Int("body_length", len(body)))
	return nil
}

// SMSSender delivers messages over SMS, logging the delivery the same
// way EmailSender does.
type SMSSender struct {
	logger *slog.Logger
}

// NewSMSSender creates an SMSSender. A nil logger falls back to the
// default logger.
func NewSMSSender(logger *slog.Logger) *SMSSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSSender{logger: logger.With(slog.String("component", "sms_sender"))}
}

// Channel implements MessageSender.
func (s *SMSSender) Channel() string { return ChannelSMS }

// Send implements MessageSender. SMS recipients must be phone numbers.
func (s *SMSSender) Send(ctx context.Context, recipient, body string) error {
	trimmed := strings.TrimPrefix(recipient, "+")
	if trimmed == "" || strings.ContainsFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' }) {
		return fmt.Errorf("invalid sms recipient %q", recipient)
	}

	s.logger.InfoContext(ctx, "sms delivered",
		slog.String("recipient", recipient),
		slog.Int("body_length", len(body)))
	return nil
}
