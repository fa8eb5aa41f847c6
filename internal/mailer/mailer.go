package mailer

import (
	"context"

	"agency-backend/internal/shared/telemetry"
)

// Message is one transactional email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer dispatches transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Placeholder logs instead of sending. Used in dev when no API key is
// configured so form submissions still succeed locally.
type Placeholder struct{}

func (Placeholder) Send(ctx context.Context, msg Message) error {
	_ = ctx
	telemetry.Info("mailer.skipped", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
