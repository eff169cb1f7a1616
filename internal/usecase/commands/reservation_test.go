//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/infra/mail"
	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/errs"
	"flute-live-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConfigStore struct {
	info     event.LiveInfo
	writeErr error
	written  []event.LiveInfo
}

func (f *fakeConfigStore) Read(_ context.Context) event.LiveInfo {
	return f.info
}

func (f *fakeConfigStore) Write(_ context.Context, info event.LiveInfo) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.written = append(f.written, info)
	f.info = info
	return nil
}

type fakeReservationLog struct {
	appendErr error
	appended  []*reservation.Reservation
}

func (f *fakeReservationLog) Append(_ context.Context, r *reservation.Reservation) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, r)
	return nil
}

type fakeMailer struct {
	sendErr error
	sent    []mail.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

var testNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.FixedZone("Asia/Tokyo", 9*60*60))

func newReservationFixture() (*fakeConfigStore, *fakeReservationLog, *fakeMailer, commands.ReservationCommands) {
	store := &fakeConfigStore{info: event.Default()}
	log := &fakeReservationLog{}
	mailer := &fakeMailer{}
	uc := commands.NewReservationCommands(
		store,
		log,
		mailer,
		reservation.NewDefaultPriceCalculator(),
		clock.NewMockClock(testNow),
		slog.New(slog.DiscardHandler),
	)
	return store, log, mailer, uc
}

func submittable() *reservation.Reservation {
	return &reservation.Reservation{
		Name:           "山田 太郎",
		NameKana:       "やまだ たろう",
		Email:          "taro@example.com",
		Phone:          "090-1234-5678",
		LiveDate:       "2025年10月4日（土）",
		GeneralTickets: 2,
		StudentTickets: 1,
		DeliveryMethod: reservation.DeliveryPostal,
		PaymentMethod:  reservation.PaymentBank,
		HowDidYouKnow:  "チラシ",
		AgreeCancel:    true,
		AgreePrivacy:   true,
	}
}

func TestSubmitReservation(t *testing.T) {
	t.Run("success: persists, notifies and prices from current config", func(t *testing.T) {
		_, log, mailer, uc := newReservationFixture()

		result, err := uc.SubmitReservation(context.Background(), submittable())
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.True(t, result.Persisted)
		assert.True(t, result.Notified)
		assert.Equal(t, 11200, result.TotalAmount)
		assert.Equal(t, "ご予約ありがとうございます。確認メールをお送りしました。", result.Message)

		require.Len(t, log.appended, 1)
		assert.Equal(t, testNow, log.appended[0].CreatedAt)
		assert.Equal(t, 11200, log.appended[0].TotalAmount)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "taro@example.com", mailer.sent[0].To)
		assert.Contains(t, mailer.sent[0].Subject, "チケットご予約ありがとうございます")
		assert.Contains(t, mailer.sent[0].Text, "山田 太郎様")
		assert.Contains(t, mailer.sent[0].Text, "¥11,200")
		assert.Contains(t, mailer.sent[0].Text, "三井住友銀行")
	})

	t.Run("validation failure: no side effects", func(t *testing.T) {
		_, log, mailer, uc := newReservationFixture()

		r := submittable()
		r.Email = "broken"
		r.AgreePrivacy = false

		_, err := uc.SubmitReservation(context.Background(), r)
		require.Error(t, err)

		var v errs.ValidationErrors
		require.ErrorAs(t, err, &v)
		assert.Len(t, v, 2)

		assert.Empty(t, log.appended)
		assert.Empty(t, mailer.sent)
	})

	t.Run("ticket limit comes from the current config, not the default", func(t *testing.T) {
		store, _, _, uc := newReservationFixture()
		store.info.MaxTickets = 2

		r := submittable()
		r.GeneralTickets = 3
		r.StudentTickets = 0

		_, err := uc.SubmitReservation(context.Background(), r)
		var v errs.ValidationErrors
		require.ErrorAs(t, err, &v)
		assert.Contains(t, v.Error(), "最大2枚まで")
	})

	t.Run("pricing uses the config at submission time", func(t *testing.T) {
		store, _, _, uc := newReservationFixture()
		store.info.GeneralPrice = 5000
		store.info.StudentPrice = 2500
		store.info.DeliveryFee = 300

		result, err := uc.SubmitReservation(context.Background(), submittable())
		require.NoError(t, err)
		assert.Equal(t, 2*5000+1*2500+300, result.TotalAmount)
	})

	t.Run("pickup delivery skips the fee", func(t *testing.T) {
		_, _, _, uc := newReservationFixture()

		r := submittable()
		r.DeliveryMethod = reservation.DeliveryPickup

		result, err := uc.SubmitReservation(context.Background(), r)
		require.NoError(t, err)
		assert.Equal(t, 11000, result.TotalAmount)
	})

	t.Run("log failure downgrades Persisted but still notifies", func(t *testing.T) {
		store := &fakeConfigStore{info: event.Default()}
		log := &fakeReservationLog{appendErr: errors.New("sheet unavailable")}
		mailer := &fakeMailer{}
		uc := commands.NewReservationCommands(
			store, log, mailer,
			reservation.NewDefaultPriceCalculator(),
			clock.NewMockClock(testNow),
			slog.New(slog.DiscardHandler),
		)

		result, err := uc.SubmitReservation(context.Background(), submittable())
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.False(t, result.Persisted)
		assert.True(t, result.Notified)
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("mail failure downgrades Notified but still persists", func(t *testing.T) {
		store := &fakeConfigStore{info: event.Default()}
		log := &fakeReservationLog{}
		mailer := &fakeMailer{sendErr: errors.New("resend 500")}
		uc := commands.NewReservationCommands(
			store, log, mailer,
			reservation.NewDefaultPriceCalculator(),
			clock.NewMockClock(testNow),
			slog.New(slog.DiscardHandler),
		)

		result, err := uc.SubmitReservation(context.Background(), submittable())
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.True(t, result.Persisted)
		assert.False(t, result.Notified)
		assert.Len(t, log.appended, 1)
	})

	t.Run("both collaborators failing still accepts", func(t *testing.T) {
		store := &fakeConfigStore{info: event.Default()}
		log := &fakeReservationLog{appendErr: errors.New("down")}
		mailer := &fakeMailer{sendErr: errors.New("down")}
		uc := commands.NewReservationCommands(
			store, log, mailer,
			reservation.NewDefaultPriceCalculator(),
			clock.NewMockClock(testNow),
			slog.New(slog.DiscardHandler),
		)

		result, err := uc.SubmitReservation(context.Background(), submittable())
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		assert.False(t, result.Persisted)
		assert.False(t, result.Notified)
	})
}
