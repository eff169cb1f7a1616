package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "flute-live-api/internal/handler/dto/request"
	resdto "flute-live-api/internal/handler/dto/response"
	"flute-live-api/internal/pkg/errs"
	"flute-live-api/internal/usecase/commands"
	"flute-live-api/internal/usecase/queries"
)

const liveInfoUpdatedMessage = "ライブ情報を更新しました"

type AdminHandler struct {
	liveInfoCommands commands.LiveInfoCommands
	liveInfoQueries  queries.LiveInfoQueries
	maxImageBytes    int64
}

func NewAdminHandler(
	liveInfoCommands commands.LiveInfoCommands,
	liveInfoQueries queries.LiveInfoQueries,
	maxImageBytes int64,
) *AdminHandler {
	return &AdminHandler{
		liveInfoCommands: liveInfoCommands,
		liveInfoQueries:  liveInfoQueries,
		maxImageBytes:    maxImageBytes,
	}
}

func (h *AdminHandler) GetLiveInfo(c *gin.Context) {
	info := h.liveInfoQueries.Get(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromLiveInfo(info))
}

// UpdateLiveInfo replaces the whole configuration record.
func (h *AdminHandler) UpdateLiveInfo(c *gin.Context) {
	var req reqdto.UpdateLiveInfoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "リクエストの形式が正しくありません",
		})
		return
	}

	info, fieldErrs := req.ToDomain()
	if fieldErrs.HasErrors() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "入力内容に誤りがあります",
			"fields": fieldErrs,
		})
		return
	}

	updated, err := h.liveInfoCommands.UpdateLiveInfo(c.Request.Context(), info)
	if err != nil {
		var v errs.ValidationErrors
		switch {
		case errors.As(err, &v):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "入力内容に誤りがあります",
				"fields": v,
			})
		case errors.Is(err, commands.ErrStoreWriteFailed):
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "ライブ情報の保存に失敗しました",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "サーバーエラーが発生しました",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.UpdateLiveInfoResponse{
		Message:  liveInfoUpdatedMessage,
		LiveInfo: resdto.FromLiveInfo(updated),
	})
}

// UploadProgramImage attaches a program image (multipart field "image") to
// the configuration as a data URI.
func (h *AdminHandler) UploadProgramImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "画像ファイルを選択してください",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "画像ファイルを読み込めませんでした",
		})
		return
	}
	defer file.Close()

	// Read one byte past the limit so the size check in the usecase fires
	// instead of silently truncating an oversized upload.
	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "画像ファイルを読み込めませんでした",
		})
		return
	}

	updated, err := h.liveInfoCommands.AttachProgramImage(c.Request.Context(), data)
	if err != nil {
		var v errs.ValidationErrors
		switch {
		case errors.As(err, &v):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "入力内容に誤りがあります",
				"fields": v,
			})
		case errors.Is(err, commands.ErrStoreWriteFailed):
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "ライブ情報の保存に失敗しました",
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "サーバーエラーが発生しました",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.UpdateLiveInfoResponse{
		Message:  liveInfoUpdatedMessage,
		LiveInfo: resdto.FromLiveInfo(updated),
	})
}
