package captcha

import (
	"context"
	"errors"

	"agency-backend/internal/shared/telemetry"
)

// ErrRejected is returned when the token fails verification or scores below
// the configured threshold.
var ErrRejected = errors.New("captcha rejected")

// Verifier checks a bot-mitigation token issued to the browser.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// Disabled accepts every token. Used in dev when no secret is configured.
type Disabled struct{}

func (Disabled) Verify(ctx context.Context, token, remoteIP string) error {
	_ = ctx
	telemetry.Info("captcha.skipped", map[string]any{"remote_ip": remoteIP})
	return nil
}
