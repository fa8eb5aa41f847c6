package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "agency-backend/internal/auth"
	"agency-backend/internal/chat"
	"agency-backend/internal/leads"
	"agency-backend/internal/newsletter"
	"agency-backend/internal/pricing"
	"agency-backend/internal/quiz"
	"agency-backend/internal/shared/config"
	"agency-backend/internal/shared/metrics"
	"agency-backend/internal/shared/server/middleware"
	"agency-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up. Nil handlers are
// skipped, which keeps route-level tests small.
type RouterDeps struct {
	Config            config.Config
	PricingHandler    *pricing.Handler
	QuizHandler       *quiz.Handler
	ContactHandler    *leads.Handler
	ChatHandler       *chat.Handler
	NewsletterHandler *newsletter.Handler
	GoogleAuth        *googleauth.GoogleService
	RateLimiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(deps.RateLimiter)),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.PricingHandler != nil {
		deps.PricingHandler.RegisterRoutes(api)
	}
	if deps.QuizHandler != nil {
		deps.QuizHandler.RegisterRoutes(api)
	}
	if deps.ContactHandler != nil {
		deps.ContactHandler.RegisterRoutes(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}
	if deps.NewsletterHandler != nil {
		deps.NewsletterHandler.RegisterRoutes(api)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth())
	if deps.ContactHandler != nil {
		deps.ContactHandler.RegisterAdminRoutes(admin)
	}
	admin.GET("/metrics", metrics.Handler())

	return r
}

func rateLimitConfig(limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		Limiter:      limiter,
		Rules: map[string]middleware.RateLimitRule{
			// 100 requests per 15 minutes for the API at large.
			"DEFAULT": {Rate: 100.0 / 900.0, Burst: 100},
			// 5 submissions per hour for the contact form.
			"CONTACT": {Rate: 5.0 / 3600.0, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/api/contact" {
				return "CONTACT"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
