package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "flute-live-api/internal/handler/dto/response"
	"flute-live-api/internal/usecase/queries"
)

type StatusHandler struct {
	statusQueries queries.StatusQueries
	debugQueries  queries.DebugQueries
}

func NewStatusHandler(statusQueries queries.StatusQueries, debugQueries queries.DebugQueries) *StatusHandler {
	return &StatusHandler{
		statusQueries: statusQueries,
		debugQueries:  debugQueries,
	}
}

// GetStatus reports which collaborator credentials are configured. Only
// booleans leave the server; the values themselves never do.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	status := h.statusQueries.Get(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromEnvironmentStatus(status))
}

// CheckSheets runs a live connectivity probe against the spreadsheet.
// Failures are part of the diagnostic, so the response is 200 either way.
func (h *StatusHandler) CheckSheets(c *gin.Context) {
	report, err := h.debugQueries.CheckSheets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, resdto.SheetsDebugResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSheetsReport(report))
}
