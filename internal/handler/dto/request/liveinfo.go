package request

import (
	"fmt"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/pkg/errs"
)

// UpdateLiveInfoRequest is the full-replacement admin payload. The required
// numeric fields are pointers so a missing field can be told apart from an
// explicit zero, which is a valid price.
type UpdateLiveInfoRequest struct {
	LiveDate        string `json:"liveDate"`
	LiveTime1       string `json:"liveTime1"`
	LiveTime2       string `json:"liveTime2"`
	Venue           string `json:"venue"`
	VenueAddress    string `json:"venueAddress"`
	GeneralPrice    *int   `json:"generalPrice"`
	StudentPrice    *int   `json:"studentPrice"`
	DeliveryFee     *int   `json:"deliveryFee"`
	MaxTickets      *int   `json:"maxTickets"`
	Notes           string `json:"notes"`
	ProgramImageURL string `json:"programImageUrl"`
}

// ToDomain reports missing required numerics as field errors and otherwise
// maps to the domain record. Range checks happen in the domain.
func (r UpdateLiveInfoRequest) ToDomain() (event.LiveInfo, errs.ValidationErrors) {
	var v errs.ValidationErrors

	required := []struct {
		name  string
		value *int
	}{
		{"generalPrice", r.GeneralPrice},
		{"studentPrice", r.StudentPrice},
		{"deliveryFee", r.DeliveryFee},
		{"maxTickets", r.MaxTickets},
	}
	for _, f := range required {
		if f.value == nil {
			v.Add(f.name, fmt.Sprintf("必須フィールドが不足しています: %s", f.name))
		}
	}
	if v.HasErrors() {
		return event.LiveInfo{}, v
	}

	return event.LiveInfo{
		LiveDate:        r.LiveDate,
		LiveTime1:       r.LiveTime1,
		LiveTime2:       r.LiveTime2,
		Venue:           r.Venue,
		VenueAddress:    r.VenueAddress,
		GeneralPrice:    *r.GeneralPrice,
		StudentPrice:    *r.StudentPrice,
		DeliveryFee:     *r.DeliveryFee,
		MaxTickets:      *r.MaxTickets,
		Notes:           r.Notes,
		ProgramImageURL: r.ProgramImageURL,
	}, nil
}
