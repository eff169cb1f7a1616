package sheets

import (
	"context"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"

	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/pkg/errs"
)

const reservationRange = "Sheet1!A:L"

// ReservationLog appends submitted reservations to the booking spreadsheet.
// Rows are append-only; nothing in this system ever edits or removes them.
type ReservationLog struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func NewReservationLog(svc *sheetsapi.Service, spreadsheetID string) *ReservationLog {
	return &ReservationLog{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}
}

func (l *ReservationLog) Append(ctx context.Context, r *reservation.Reservation) error {
	row := []any{
		r.CreatedAt.Format(time.RFC3339),
		r.Name,
		r.NameKana,
		r.Email,
		r.Phone,
		r.LiveDate,
		r.TicketSummary(),
		r.DeliveryMethod.Label(),
		r.TotalAmount,
		r.PaymentMethod.Label(),
		r.Requests,
		r.HowDidYouKnow,
	}

	vr := &sheetsapi.ValueRange{Values: [][]any{row}}
	_, err := l.svc.Spreadsheets.Values.Append(l.spreadsheetID, reservationRange, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return errs.Wrap(err, "failed to append reservation row")
	}
	return nil
}
