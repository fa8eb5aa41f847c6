package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-backend/internal/pricing"
	"agency-backend/internal/shared/metrics"
	"agency-backend/internal/shared/server/respond"
)

type Handler struct {
	Sessions *SessionStore
}

func NewHandler(sessions *SessionStore) *Handler {
	return &Handler{Sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quiz", h.complete)
}

func (h *Handler) complete(c *gin.Context) {
	var answers Answers
	if err := c.ShouldBindJSON(&answers); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec := GetRecommendation(answers)

	sessionID := ""
	if h.Sessions != nil {
		session := h.Sessions.Record(rec)
		sessionID = session.ID
	}
	metrics.IncQuizCompleted()

	respond.OK(c, gin.H{
		"sessionId":       sessionID,
		"recommendation":  rec,
		"discountPercent": pricing.QuizDiscountPercent,
	})
}
