package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "flute-live-api/internal/handler/dto/response"
	"flute-live-api/internal/usecase/queries"
)

type LiveInfoHandler struct {
	liveInfoQueries queries.LiveInfoQueries
}

func NewLiveInfoHandler(liveInfoQueries queries.LiveInfoQueries) *LiveInfoHandler {
	return &LiveInfoHandler{
		liveInfoQueries: liveInfoQueries,
	}
}

// GetLiveInfo serves the public page. The store read degrades to built-in
// defaults on any backend problem, so this never returns an error.
func (h *LiveInfoHandler) GetLiveInfo(c *gin.Context) {
	info := h.liveInfoQueries.Get(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromLiveInfo(info))
}
