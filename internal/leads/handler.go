package leads

import (
	"errors"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"agency-backend/internal/shared/server/respond"
	"agency-backend/internal/shared/util"
)

const (
	maxNameLen    = 200
	maxCompanyLen = 200
	maxMessageLen = 5000
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

// RegisterAdminRoutes mounts the lead review endpoints. The caller is
// expected to guard the group with admin auth.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.list)
}

type contactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
	QuizSessionID  string `json:"quizSessionId"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (r *contactRequest) validate() []fieldError {
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
	}
	if r.RecaptchaToken == "" {
		errs = append(errs, fieldError{Field: "recaptchaToken", Message: "recaptchaToken is required"})
	}
	return errs
}

func (h *Handler) submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request failed validation", errs)
		return
	}

	lead, err := h.Service.Submit(c.Request.Context(), SubmitInput{
		Name:           util.SanitizeLine(req.Name, maxNameLen),
		Email:          util.SanitizeLine(req.Email, maxNameLen),
		Company:        util.SanitizeLine(req.Company, maxCompanyLen),
		Message:        util.SanitizeText(req.Message, maxMessageLen),
		RecaptchaToken: req.RecaptchaToken,
		RemoteIP:       c.ClientIP(),
		QuizSessionID:  req.QuizSessionID,
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

	c.Set("leadId", lead.ID)
	respond.OK(c, gin.H{"id": lead.ID, "status": "received"})
}

func (h *Handler) list(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	items, err := h.Service.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not load leads", nil)
		return
	}
	if items == nil {
		items = []Lead{}
	}
	respond.OK(c, gin.H{"leads": items, "count": len(items)})
}
