package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "flute-live-api/internal/handler/dto/request"
	resdto "flute-live-api/internal/handler/dto/response"
	"flute-live-api/internal/usecase/commands"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
}

func NewAuthHandler(authCommands commands.AuthCommands) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
	}
}

// Login checks the admin shared secret and hands out a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.AdminAuthRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "パスワードが入力されていません",
		})
		return
	}

	result, err := h.authCommands.Authenticate(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuthNotConfigured):
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "管理機能が設定されていません",
			})
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "パスワードが間違っています",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "認証エラーが発生しました",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AdminAuthResponse{
		Success: true,
		Token:   result.Token,
	})
}
