//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flute-live-api/internal/handler/middleware"
	"flute-live-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(t *testing.T, tokens *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := middleware.NewAdminAuthMiddleware(tokens)
	router.GET("/api/admin/live-info", auth.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func performGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/live-info", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin(t *testing.T) {
	tokens := jwt.NewService("test-secret", time.Hour)
	router := newProtectedRouter(t, tokens)

	t.Run("valid token passes through", func(t *testing.T) {
		token, err := tokens.GenerateAdminToken(time.Now())
		require.NoError(t, err)

		rec := performGet(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header: 401", func(t *testing.T) {
		rec := performGet(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "認証が必要です")
	})

	t.Run("non-bearer header: 401", func(t *testing.T) {
		rec := performGet(router, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token: 401", func(t *testing.T) {
		rec := performGet(router, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token: 401", func(t *testing.T) {
		token, err := tokens.GenerateAdminToken(time.Now().Add(-2 * time.Hour))
		require.NoError(t, err)

		rec := performGet(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "有効期限")
	})

	t.Run("token signed with a different secret: 401", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateAdminToken(time.Now())
		require.NoError(t, err)

		rec := performGet(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
