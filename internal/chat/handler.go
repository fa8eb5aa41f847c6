package chat

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"

	"agency-backend/internal/shared/metrics"
	"agency-backend/internal/shared/server/respond"
	"agency-backend/internal/shared/util"
)

const (
	maxNameLen       = 200
	maxMessageLen    = 500
	maxSuggestions   = 10
	maxSuggestionLen = 120
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.forward)
}

type chatRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Message        string   `json:"message"`
	Suggestions    []string `json:"suggestions"`
	Honeypot       string   `json:"hp_field"`
	RecaptchaToken string   `json:"recaptchaToken"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (r *chatRequest) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, fieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, fieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, fieldError{Field: "email", Message: "email is not a valid address"})
	}
	if strings.TrimSpace(r.Message) == "" {
		errs = append(errs, fieldError{Field: "message", Message: "message is required"})
	} else if len([]rune(r.Message)) > maxMessageLen {
		errs = append(errs, fieldError{Field: "message", Message: "message exceeds 500 characters"})
	}
	if r.RecaptchaToken == "" {
		errs = append(errs, fieldError{Field: "recaptchaToken", Message: "recaptchaToken is required"})
	}
	return errs
}

func (h *Handler) forward(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Honeypot != "" {
		metrics.IncHoneypotRejected()
		respond.Error(c, http.StatusBadRequest, "rejected", "submission rejected", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request failed validation", errs)
		return
	}

	suggestions := req.Suggestions
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	cleaned := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if s = util.SanitizeLine(s, maxSuggestionLen); s != "" {
			cleaned = append(cleaned, s)
		}
	}

	id, err := h.Service.Forward(c.Request.Context(), ForwardInput{
		Name:           util.SanitizeLine(req.Name, maxNameLen),
		Email:          util.SanitizeLine(req.Email, maxNameLen),
		Message:        util.SanitizeText(req.Message, maxMessageLen),
		Suggestions:    cleaned,
		RecaptchaToken: req.RecaptchaToken,
		RemoteIP:       c.ClientIP(),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCaptchaRejected):
			respond.Error(c, http.StatusBadRequest, "captcha_rejected", "submission could not be verified", nil)
		case errors.Is(err, ErrEmailFailed):
			respond.Error(c, http.StatusInternalServerError, "email_failed", "could not deliver your message, please try again later", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "something went wrong", nil)
		}
		return
	}

	respond.OK(c, gin.H{"id": id, "status": "received"})
}
