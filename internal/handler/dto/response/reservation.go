package response

import (
	"flute-live-api/internal/usecase/commands"
)

// SubmitReservationResponse reports the verdict and the two independent
// collaborator flags. The HTTP status is 200 whenever validation passed, even
// if persistence or notification failed (the flags carry that information).
type SubmitReservationResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Persisted   bool   `json:"persisted"`
	Notified    bool   `json:"notified"`
	TotalAmount int    `json:"totalAmount"`
}

func FromSubmitResult(result *commands.SubmitReservationResult) *SubmitReservationResponse {
	return &SubmitReservationResponse{
		Success:     result.Accepted,
		Message:     result.Message,
		Persisted:   result.Persisted,
		Notified:    result.Notified,
		TotalAmount: result.TotalAmount,
	}
}
