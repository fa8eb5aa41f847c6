package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agency-backend/internal/shared/server/respond"
)

// QuizSessions reports whether a quiz session id belongs to a live,
// completed quiz. Satisfied by the quiz session store.
type QuizSessions interface {
	Completed(id string) bool
}

type Handler struct {
	Sessions QuizSessions
}

func NewHandler(sessions QuizSessions) *Handler {
	return &Handler{Sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pricing/catalog", h.catalog)
	rg.POST("/quote", h.quote)
}

func (h *Handler) catalog(c *gin.Context) {
	respond.OK(c, gin.H{
		"features":        Catalog(),
		"tiers":           Tiers(),
		"perFeaturePrice": PerFeaturePrice,
	})
}

type quoteRequest struct {
	PageCount     int      `json:"pageCount"`
	Users         int      `json:"users"`
	FeatureIDs    []string `json:"featureIds"`
	QuizSessionID string   `json:"quizSessionId"`
}

func (h *Handler) quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.PageCount < 1 {
		req.PageCount = 1
	}
	if req.Users < 1 {
		req.Users = 1
	}

	fromQuiz := false
	if req.QuizSessionID != "" && h.Sessions != nil {
		fromQuiz = h.Sessions.Completed(req.QuizSessionID)
	}

	features := Select(req.FeatureIDs)
	quote := BuildQuote(req.PageCount, features, fromQuiz)
	comparison := CompareSaaS(req.PageCount, req.Users, features, quote.Total)

	respond.OK(c, gin.H{
		"quote":      quote,
		"comparison": comparison,
	})
}
