package newsletter

import (
	"context"
	"errors"
	"fmt"

	"agency-backend/internal/captcha"
	"agency-backend/internal/mailer"
	"agency-backend/internal/shared/metrics"
	"agency-backend/internal/shared/telemetry"
)

// ErrCaptchaRejected marks a signup blocked by bot mitigation.
var ErrCaptchaRejected = errors.New("captcha rejected")

// ErrEmailFailed marks a signup that could not be forwarded.
var ErrEmailFailed = errors.New("email dispatch failed")

type Service struct {
	Mailer    mailer.Mailer
	Captcha   captcha.Verifier
	EmailFrom string
	EmailTo   string
}

// Subscribe verifies the token and forwards the signup to the inbox that
// manages the mailing list.
func (s *Service) Subscribe(ctx context.Context, email, token, remoteIP string) error {
	if s == nil || s.Mailer == nil || s.Captcha == nil {
		return errors.New("newsletter service not configured")
	}

	if err := s.Captcha.Verify(ctx, token, remoteIP); err != nil {
		metrics.IncCaptchaRejected()
		if !errors.Is(err, captcha.ErrRejected) {
			telemetry.Error("captcha.verify_failed", map[string]any{"error": err.Error()})
		}
		return ErrCaptchaRejected
	}

	msg := mailer.Message{
		From:    s.EmailFrom,
		To:      []string{s.EmailTo},
		ReplyTo: email,
		Subject: "Newsletter signup",
		Text:    fmt.Sprintf("New newsletter subscriber: %s\n", email),
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		metrics.IncEmailFailed()
		telemetry.Error("newsletter.email_failed", map[string]any{"error": err.Error()})
		return ErrEmailFailed
	}

	metrics.IncNewsletterAccepted()
	return nil
}
