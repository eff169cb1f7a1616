package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/pkg/errs"
)

// reservationRow mirrors the spreadsheet row layout, one JSON object per line.
type reservationRow struct {
	Timestamp      string `json:"timestamp"`
	Name           string `json:"name"`
	NameKana       string `json:"nameKana"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	LiveDate       string `json:"liveDate"`
	Tickets        string `json:"tickets"`
	DeliveryMethod string `json:"deliveryMethod"`
	TotalAmount    int    `json:"totalAmount"`
	PaymentMethod  string `json:"paymentMethod"`
	Requests       string `json:"requests,omitempty"`
	HowDidYouKnow  string `json:"howDidYouKnow"`
}

// ReservationLog appends reservations to a local JSONL file.
type ReservationLog struct {
	path string
}

func NewReservationLog(path string) *ReservationLog {
	return &ReservationLog{path: path}
}

func (l *ReservationLog) Append(_ context.Context, r *reservation.Reservation) error {
	row := reservationRow{
		Timestamp:      r.CreatedAt.Format(time.RFC3339),
		Name:           r.Name,
		NameKana:       r.NameKana,
		Email:          r.Email,
		Phone:          r.Phone,
		LiveDate:       r.LiveDate,
		Tickets:        r.TicketSummary(),
		DeliveryMethod: r.DeliveryMethod.Label(),
		TotalAmount:    r.TotalAmount,
		PaymentMethod:  r.PaymentMethod.Label(),
		Requests:       r.Requests,
		HowDidYouKnow:  r.HowDidYouKnow,
	}

	data, err := json.Marshal(row)
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation row")
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errs.Wrap(err, "failed to create data directory")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errs.Wrap(err, "failed to open reservation log")
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return errs.Wrap(err, "failed to append reservation row")
	}
	return nil
}
