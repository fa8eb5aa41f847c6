package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"agency-backend/internal/captcha"
	"agency-backend/internal/mailer"
	"agency-backend/internal/shared/metrics"
	"agency-backend/internal/shared/telemetry"
)

// ErrCaptchaRejected marks a chat message blocked by bot mitigation.
var ErrCaptchaRejected = errors.New("captcha rejected")

// ErrEmailFailed marks a chat message that could not be forwarded.
var ErrEmailFailed = errors.New("email dispatch failed")

type Service struct {
	Mailer    mailer.Mailer
	Captcha   captcha.Verifier
	EmailFrom string
	EmailTo   string
}

// ForwardInput is a sanitized chat-widget message.
type ForwardInput struct {
	Name           string
	Email          string
	Message        string
	Suggestions    []string
	RecaptchaToken string
	RemoteIP       string
}

// Forward verifies the token and relays the chat message by email. It
// returns the generated message id.
func (s *Service) Forward(ctx context.Context, in ForwardInput) (string, error) {
	if s == nil || s.Mailer == nil || s.Captcha == nil {
		return "", errors.New("chat service not configured")
	}

	if err := s.Captcha.Verify(ctx, in.RecaptchaToken, in.RemoteIP); err != nil {
		metrics.IncCaptchaRejected()
		if !errors.Is(err, captcha.ErrRejected) {
			telemetry.Error("captcha.verify_failed", map[string]any{"error": err.Error()})
		}
		return "", ErrCaptchaRejected
	}

	id := uuid.NewString()
	if err := s.Mailer.Send(ctx, s.notification(id, in)); err != nil {
		metrics.IncEmailFailed()
		telemetry.Error("chat.email_failed", map[string]any{
			"message_id": id,
			"error":      err.Error(),
		})
		return "", ErrEmailFailed
	}

	metrics.IncChatAccepted()
	return id, nil
}

func (s *Service) notification(id string, in ForwardInput) mailer.Message {
	body := fmt.Sprintf("Name: %s\nEmail: %s\nMessage ID: %s\n\n%s\n", in.Name, in.Email, id, in.Message)
	if len(in.Suggestions) > 0 {
		body += "\nClicked suggestions: " + strings.Join(in.Suggestions, ", ") + "\n"
	}
	return mailer.Message{
		From:    s.EmailFrom,
		To:      []string{s.EmailTo},
		ReplyTo: in.Email,
		Subject: fmt.Sprintf("Chat message from %s", in.Name),
		Text:    body,
	}
}
