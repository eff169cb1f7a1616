package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"flute-live-api/internal/pkg/jwt"
)

// AdminAuthMiddleware gates the configuration editor endpoints behind the
// admin session token issued by the auth endpoint.
type AdminAuthMiddleware struct {
	tokens *jwt.Service
}

func NewAdminAuthMiddleware(tokens *jwt.Service) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{tokens: tokens}
}

func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "認証が必要です",
			})
			c.Abort()
			return
		}

		if err := m.tokens.ValidateAdminToken(token); err != nil {
			slog.Warn("admin token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "認証の有効期限が切れています。再度ログインしてください",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
