package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agency-backend/internal/captcha"
	"agency-backend/internal/mailer"
	"agency-backend/internal/quiz"
	"agency-backend/internal/shared/metrics"
	"agency-backend/internal/shared/telemetry"
)

// ErrCaptchaRejected marks a submission blocked by bot mitigation.
var ErrCaptchaRejected = errors.New("captcha rejected")

// ErrEmailFailed marks a submission that validated but could not be
// delivered to the notification inbox.
var ErrEmailFailed = errors.New("email dispatch failed")

// QuizSessions resolves a quiz session id to its recorded session.
type QuizSessions interface {
	Get(id string) (quiz.Session, bool)
}

type Service struct {
	Repo      Repo
	Mailer    mailer.Mailer
	Captcha   captcha.Verifier
	Sessions  QuizSessions
	EmailFrom string
	EmailTo   string
}

// SubmitInput is a sanitized contact submission. The recaptcha token never
// travels further than the verifier.
type SubmitInput struct {
	Name           string
	Email          string
	Company        string
	Message        string
	RecaptchaToken string
	RemoteIP       string
	QuizSessionID  string
}

// Submit verifies the token, captures the lead and emails the notification.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Lead, error) {
	if s == nil || s.Repo == nil || s.Mailer == nil || s.Captcha == nil {
		return Lead{}, errors.New("leads service not configured")
	}

	if err := s.Captcha.Verify(ctx, in.RecaptchaToken, in.RemoteIP); err != nil {
		metrics.IncCaptchaRejected()
		if !errors.Is(err, captcha.ErrRejected) {
			telemetry.Error("captcha.verify_failed", map[string]any{"error": err.Error()})
		}
		return Lead{}, ErrCaptchaRejected
	}

	lead := Lead{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Message:   in.Message,
		Source:    SourceContact,
		CreatedAt: time.Now().UTC(),
	}
	if in.QuizSessionID != "" && s.Sessions != nil {
		if session, ok := s.Sessions.Get(in.QuizSessionID); ok {
			lead.PriorityLabel = session.PriorityLabel
		}
	}

	if err := s.Repo.Create(ctx, lead); err != nil {
		return Lead{}, fmt.Errorf("store lead: %w", err)
	}

	if err := s.Mailer.Send(ctx, s.notification(lead)); err != nil {
		metrics.IncEmailFailed()
		telemetry.Error("lead.email_failed", map[string]any{
			"lead_id": lead.ID,
			"error":   err.Error(),
		})
		return Lead{}, ErrEmailFailed
	}

	metrics.IncContactAccepted()
	return lead, nil
}

// List returns the most recent captured leads.
func (s *Service) List(ctx context.Context, limit int) ([]Lead, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("leads service not configured")
	}
	return s.Repo.List(ctx, limit)
}

func (s *Service) notification(lead Lead) mailer.Message {
	body := fmt.Sprintf("Name: %s\nEmail: %s\n", lead.Name, lead.Email)
	if lead.Company != "" {
		body += fmt.Sprintf("Company: %s\n", lead.Company)
	}
	if lead.PriorityLabel != "" {
		body += fmt.Sprintf("Lead priority: %s\n", lead.PriorityLabel)
	}
	body += "\n" + lead.Message + "\n"

	return mailer.Message{
		From:    s.EmailFrom,
		To:      []string{s.EmailTo},
		ReplyTo: lead.Email,
		Subject: fmt.Sprintf("New contact submission from %s", lead.Name),
		Text:    body,
	}
}
