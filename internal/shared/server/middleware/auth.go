package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"agency-backend/internal/shared/auth"
	"agency-backend/internal/shared/server/respond"
)

const (
	adminEmailKey = "adminEmail"
	adminNameKey  = "adminName"
)

// AdminAuth validates the admin JWT minted by the Google login flow and
// stores the admin identity in context. Public routes never pass through it.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.VerifyJWT(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		if !strings.HasPrefix(claims.Sub, "admin:") {
			respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
			return
		}

		c.Set(adminEmailKey, claims.Email)
		if claims.Name != "" {
			c.Set(adminNameKey, claims.Name)
		}
		c.Next()
	}
}

// AdminEmailFromContext returns the authenticated admin's email, if any.
func AdminEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(adminEmailKey)
}
