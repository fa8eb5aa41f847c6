package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Recaptcha verifies tokens against Google's siteverify endpoint.
type Recaptcha struct {
	secret     string
	threshold  float64
	endpoint   string
	httpClient *http.Client
}

// NewRecaptcha constructs a verifier for the given secret. Tokens scoring
// below threshold are rejected.
func NewRecaptcha(secret string, threshold float64) (*Recaptcha, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("RECAPTCHA_SECRET is required")
	}
	if threshold <= 0 || threshold > 1 {
		threshold = 0.5
	}
	timeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("RECAPTCHA_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Recaptcha{
		secret:    secret,
		threshold: threshold,
		endpoint:  verifyURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

func (r *Recaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrRejected
	}

	form := url.Values{}
	form.Set("secret", r.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("siteverify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("siteverify status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode siteverify response: %w", err)
	}
	if !body.Success {
		return ErrRejected
	}
	// v2 responses carry no score; only enforce the threshold when present.
	if body.Score > 0 && body.Score < r.threshold {
		return ErrRejected
	}
	return nil
}
