package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "flute-live-api/internal/handler/dto/request"
	resdto "flute-live-api/internal/handler/dto/response"
	"flute-live-api/internal/pkg/errs"
	"flute-live-api/internal/usecase/commands"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
	}
}

// SubmitReservation accepts a ticket request. Validation problems come back
// as a field-level list with 400; once validation passes the response is
// always 200 with independent persisted/notified flags, so a booking-log or
// mail hiccup never blocks the submitter.
func (h *ReservationHandler) SubmitReservation(c *gin.Context) {
	var req reqdto.SubmitReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "必須項目が入力されていません",
		})
		return
	}

	result, err := h.reservationCommands.SubmitReservation(c.Request.Context(), req.ToDomain())
	if err != nil {
		var fieldErrs errs.ValidationErrors
		switch {
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "入力内容に誤りがあります",
				"fields": fieldErrs,
			})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "サーバーエラーが発生しました",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubmitResult(result))
}
