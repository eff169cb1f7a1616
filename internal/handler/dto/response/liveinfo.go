package response

import (
	"time"

	"github.com/jinzhu/copier"

	"flute-live-api/internal/domain/event"
)

// LiveInfoResponse is the full configuration payload. Earlier site versions
// trimmed programImageUrl and the cancel policy from the public read; the
// superset is returned on both the public and admin endpoints now.
type LiveInfoResponse struct {
	LiveDate           string    `json:"liveDate"`
	LiveTime1          string    `json:"liveTime1"`
	LiveTime2          string    `json:"liveTime2,omitempty"`
	Venue              string    `json:"venue"`
	VenueAddress       string    `json:"venueAddress,omitempty"`
	GeneralPrice       int       `json:"generalPrice"`
	StudentPrice       int       `json:"studentPrice"`
	DeliveryFee        int       `json:"deliveryFee"`
	MaxTickets         int       `json:"maxTickets"`
	Notes              string    `json:"notes,omitempty"`
	ProgramImageURL    string    `json:"programImageUrl,omitempty"`
	CancelPolicy       string    `json:"cancelPolicy"`
	CancelDeadlineDays int       `json:"cancelDeadlineDays"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func FromLiveInfo(info event.LiveInfo) *LiveInfoResponse {
	var resp LiveInfoResponse
	_ = copier.Copy(&resp, &info)
	return &resp
}

type UpdateLiveInfoResponse struct {
	Message  string            `json:"message"`
	LiveInfo *LiveInfoResponse `json:"liveInfo"`
}
