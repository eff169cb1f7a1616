package request

import (
	"strings"

	"flute-live-api/internal/domain/reservation"
)

// SubmitReservationRequest deliberately carries no binding tags: the domain
// layer validates every field at once so the submitter gets the complete list
// of problems, not just the first binding failure.
type SubmitReservationRequest struct {
	Name           string `json:"name"`
	NameKana       string `json:"nameKana"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LiveDate       string `json:"liveDate"`
	GeneralTickets int    `json:"generalTickets"`
	StudentTickets int    `json:"studentTickets"`
	DeliveryMethod string `json:"deliveryMethod"`
	PaymentMethod  string `json:"paymentMethod"`
	Requests       string `json:"requests"`
	HowDidYouKnow  string `json:"howDidYouKnow"`
	AgreeCancel    bool   `json:"agreeCancel"`
	AgreePrivacy   bool   `json:"agreePrivacy"`
}

func (r SubmitReservationRequest) ToDomain() *reservation.Reservation {
	return &reservation.Reservation{
		Name:           strings.TrimSpace(r.Name),
		NameKana:       strings.TrimSpace(r.NameKana),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		LiveDate:       r.LiveDate,
		GeneralTickets: r.GeneralTickets,
		StudentTickets: r.StudentTickets,
		DeliveryMethod: reservation.DeliveryMethod(r.DeliveryMethod),
		PaymentMethod:  reservation.PaymentMethod(r.PaymentMethod),
		Requests:       strings.TrimSpace(r.Requests),
		HowDidYouKnow:  r.HowDidYouKnow,
		AgreeCancel:    r.AgreeCancel,
		AgreePrivacy:   r.AgreePrivacy,
	}
}
