package dip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Notification errors.
var (
	// ErrUnknownChannel is returned when no sender serves the
	// requested channel.
	ErrUnknownChannel = errors.New("unknown notification channel")

	// ErrEmptyRecipient is returned when the recipient is blank.
	ErrEmptyRecipient = errors.New("recipient cannot be empty")

	// ErrEmptyMessage is returned when the message body is blank.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrDeliveryFailed wraps sender failures.
	ErrDeliveryFailed = errors.New("delivery failed")
)

// Receipt records a successful delivery.
type Receipt struct {
	ID        uuid.UUID `json:"id"`
	Channel   string    `json:"channel"`
	Recipient string    `json:"recipient"`
	SentAt    time.Time `json:"sent_at"`
}

// NotificationService routes messages to the sender registered for a
// channel. It holds MessageSender values only; the concrete email and
// SMS types are injected at construction.
type NotificationService struct {
	senders map[string]MessageSender
	logger  *slog.Logger
	now     func() time.Time
}

// NewNotificationService creates a service with the given senders.
// A nil logger falls back to the default logger.
func NewNotificationService(logger *slog.Logger, senders ...MessageSender) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &NotificationService{
		senders: make(map[string]MessageSender, len(senders)),
		logger:  logger.With(slog.String("component", "notification_service")),
		now:     time.Now,
	}
	for _, sender := range senders {
		s.senders[sender.Channel()] = sender
	}
	return s
}

// Channels returns the channel names with a registered sender.
func (s *NotificationService) Channels() []string {
	channels := make([]string, 0, len(s.senders))
	for channel := range s.senders {
		channels = append(channels, channel)
	}
	return channels
}

// Notify delivers a message over the given channel and returns a
// delivery receipt. Returns ErrUnknownChannel when no sender serves
// the channel and wraps sender failures in ErrDeliveryFailed.
func (s *NotificationService) Notify(
	ctx context.Context,
	channel, recipient, body string,
) (*Receipt, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, ErrEmptyRecipient
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}

	sender, ok := s.senders[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}

	if err := sender.Send(ctx, recipient, body); err != nil {
		s.logger.ErrorContext(ctx, "notification delivery failed",
			slog.String("channel", channel),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	receipt := &Receipt{
		ID:        uuid.New(),
		Channel:   channel,
		Recipient: recipient,
		SentAt:    s.now().UTC(),
	}

	s.logger.DebugContext(ctx, "notification delivered",
		slog.String("channel", channel),
		slog.String("receipt_id", receipt.ID.String()))
	return receipt, nil
}
