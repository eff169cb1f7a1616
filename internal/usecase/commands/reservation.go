package commands

import (
	"context"
	"log/slog"

	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/infra/mail"
	"flute-live-api/internal/pkg/clock"
)

const acceptedMessage = "ご予約ありがとうございます。確認メールをお送りしました。"

// SubmitReservationResult carries the overall verdict plus independent
// best-effort flags. Collaborator failures downgrade a flag instead of
// failing the submission: losing a confirmation email over a booking-log
// hiccup is worse than a logged warning for a low-volume reservation desk.
type SubmitReservationResult struct {
	Accepted    bool
	Persisted   bool
	Notified    bool
	TotalAmount int
	Message     string
}

type ReservationCommands interface {
	SubmitReservation(ctx context.Context, r *reservation.Reservation) (*SubmitReservationResult, error)
}

type reservationCommandsImpl struct {
	store  ConfigStore
	log    ReservationLog
	mailer mail.Mailer
	calc   reservation.PriceCalculator
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationCommands(
	store ConfigStore,
	log ReservationLog,
	mailer mail.Mailer,
	calc reservation.PriceCalculator,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		store:  store,
		log:    log,
		mailer: mailer,
		calc:   calc,
		clock:  clk,
		logger: logger,
	}
}

// SubmitReservation runs the pipeline: validate, price, persist, notify.
// Validation failures return errs.ValidationErrors with no side effects.
// After validation the submission always succeeds from the caller's point of
// view; Persisted and Notified report each collaborator independently.
func (c *reservationCommandsImpl) SubmitReservation(ctx context.Context, r *reservation.Reservation) (*SubmitReservationResult, error) {
	// Re-read the configuration at submission time. The form may have been
	// rendered before an admin edit; pricing must use the current record.
	info := c.store.Read(ctx)

	if v := r.Validate(info.MaxTickets); v.HasErrors() {
		return nil, v
	}

	r.TotalAmount = c.calc.Total(r.GeneralTickets, r.StudentTickets, r.DeliveryMethod, reservation.Prices{
		General:  info.GeneralPrice,
		Student:  info.StudentPrice,
		Delivery: info.DeliveryFee,
	})
	r.CreatedAt = c.clock.Now()

	persisted := true
	if err := c.log.Append(ctx, r); err != nil {
		persisted = false
		c.logger.Error("failed to persist reservation", "email", r.Email, "error", err.Error())
	}

	notified := true
	if err := c.mailer.Send(ctx, buildConfirmationMail(info, r)); err != nil {
		notified = false
		c.logger.Error("failed to send confirmation email", "email", r.Email, "error", err.Error())
	}

	return &SubmitReservationResult{
		Accepted:    true,
		Persisted:   persisted,
		Notified:    notified,
		TotalAmount: r.TotalAmount,
		Message:     acceptedMessage,
	}, nil
}
