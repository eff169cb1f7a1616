package commands

import (
	"context"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/domain/reservation"
)

// ConfigStore is the event-configuration collaborator. Read never fails (it
// degrades to built-in defaults); Write replaces the record wholesale and
// stamps the update time server-side. There is no locking: concurrent admin
// writes race and the last one wins, which is acceptable for a single-admin
// site and documented as such.
type ConfigStore interface {
	Read(ctx context.Context) event.LiveInfo
	Write(ctx context.Context, info event.LiveInfo) error
}

// ReservationLog is the append-only booking log collaborator.
type ReservationLog interface {
	Append(ctx context.Context, r *reservation.Reservation) error
}
