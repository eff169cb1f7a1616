package event

import (
	"time"

	"flute-live-api/internal/pkg/errs"
)

// DefaultCancelPolicy is pinned on every admin write; the editor never
// overrides it.
const DefaultCancelPolicy = "お客様都合によるお申込み後のキャンセルおよび返金はお受けしておりません。予めご了承ください。\n" +
	"なお、当日現金払いを選択されたお客様でご来場いただけなかった場合には、お手数ですが お振込み下さいますようお願いいたします。"

const DefaultCancelDeadlineDays = 0

// LiveInfo is the single editable record describing the current event: date,
// sessions, venue, ticket prices and capacity. Exactly one instance exists;
// admin writes replace it wholesale.
type LiveInfo struct {
	LiveDate           string
	LiveTime1          string
	LiveTime2          string
	Venue              string
	VenueAddress       string
	GeneralPrice       int
	StudentPrice       int
	DeliveryFee        int
	MaxTickets         int
	Notes              string
	ProgramImageURL    string
	CancelPolicy       string
	CancelDeadlineDays int
	UpdatedAt          time.Time
}

// Default returns the built-in configuration used whenever the backing store
// is empty, unreachable or malformed. The public site must always render
// something, so reads fall back here instead of erroring.
func Default() LiveInfo {
	return LiveInfo{
		LiveDate:           "2025年10月4日（土）",
		LiveTime1:          "14:00",
		LiveTime2:          "",
		Venue:              "詳細は予約後にご案内いたします",
		VenueAddress:       "",
		GeneralPrice:       4000,
		StudentPrice:       3000,
		DeliveryFee:        200,
		MaxTickets:         10,
		Notes:              "",
		ProgramImageURL:    "/images/concert-program.png",
		CancelPolicy:       DefaultCancelPolicy,
		CancelDeadlineDays: DefaultCancelDeadlineDays,
		UpdatedAt:          time.Now(),
	}
}

// Validate checks an incoming admin payload. Errors are field-scoped so the
// editor can highlight exactly what to fix.
func (li LiveInfo) Validate() errs.ValidationErrors {
	var v errs.ValidationErrors

	if li.LiveDate == "" {
		v.Add("liveDate", "ライブ日程を入力してください")
	}
	if li.LiveTime1 == "" {
		v.Add("liveTime1", "開演時間を入力してください")
	}
	if li.Venue == "" {
		v.Add("venue", "会場を入力してください")
	}
	if li.GeneralPrice < 0 {
		v.Add("generalPrice", "無効な値です: generalPrice")
	}
	if li.StudentPrice < 0 {
		v.Add("studentPrice", "無効な値です: studentPrice")
	}
	if li.DeliveryFee < 0 {
		v.Add("deliveryFee", "無効な値です: deliveryFee")
	}
	if li.MaxTickets < 1 {
		v.Add("maxTickets", "無効な値です: maxTickets")
	}

	return v
}

// SessionTimes returns the configured session starts in order (one or two).
func (li LiveInfo) SessionTimes() []string {
	times := []string{li.LiveTime1}
	if li.LiveTime2 != "" {
		times = append(times, li.LiveTime2)
	}
	return times
}
