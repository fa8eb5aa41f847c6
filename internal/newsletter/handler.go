package newsletter

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

const maxEmailLen = 200

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/newsletter", h.subscribe)
}

type subscribeRequest struct {
	Email          string `json:"email"`
	Honeypot       string `json:"hp_field"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (r *subscribeRequest) validate() []fieldError {
	var errs []fieldError
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, fieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = append(errs, fieldError{Field: "email", Message: "email is not a valid address"})
	}
	if r.RecaptchaToken == "" {
		errs = append(errs, fieldError{Field: "recaptchaToken", Message: "recaptchaToken is required"})
	}
	return errs
}

func (h *Handler) subscribe(c *gin.Context) {
	var req subscribeRequest
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

	email := util.SanitizeLine(req.Email, maxEmailLen)
	err := h.Service.Subscribe(c.Request.Context(), email, req.RecaptchaToken, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, ErrCaptchaRejected):
			respond.Error(c, http.StatusBadRequest, "captcha_rejected", "submission could not be verified", nil)
		case errors.Is(err, ErrEmailFailed):
			respond.Error(c, http.StatusInternalServerError, "email_failed", "could not complete your signup, please try again later", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "something went wrong", nil)
		}
		return
	}

	respond.OK(c, gin.H{"status": "subscribed"})
}
