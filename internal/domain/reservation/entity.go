package reservation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"flute-live-api/internal/pkg/errs"
)

const minPhoneDigits = 10

// Reservation is one submitted ticket request. Records are append-only: once
// written to the log they are never mutated or deleted by this system. The
// creation timestamp serves as the de facto key.
type Reservation struct {
	Name           string
	NameKana       string
	Email          string
	Phone          string
	LiveDate       string
	GeneralTickets int
	StudentTickets int
	DeliveryMethod DeliveryMethod
	PaymentMethod  PaymentMethod
	Requests       string
	HowDidYouKnow  string
	AgreeCancel    bool
	AgreePrivacy   bool
	TotalAmount    int
	CreatedAt      time.Time
}

func (r *Reservation) TotalTickets() int {
	return r.GeneralTickets + r.StudentTickets
}

// TicketSummary renders the log-sheet ticket column, e.g. "一般 2枚, 学生 1枚".
func (r *Reservation) TicketSummary() string {
	return fmt.Sprintf("一般 %d枚, 学生 %d枚", r.GeneralTickets, r.StudentTickets)
}

// Validate checks every submitter-correctable rule and reports them all at
// once. maxTickets comes from the current event configuration.
func (r *Reservation) Validate(maxTickets int) errs.ValidationErrors {
	var v errs.ValidationErrors

	if strings.TrimSpace(r.Name) == "" {
		v.Add("name", "お名前を入力してください")
	}
	if strings.TrimSpace(r.NameKana) == "" {
		v.Add("nameKana", "ふりがなを入力してください")
	}
	if r.Email == "" {
		v.Add("email", "メールアドレスを入力してください")
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		v.Add("email", "正しいメールアドレスを入力してください")
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Phone)) < minPhoneDigits {
		v.Add("phone", "電話番号を入力してください")
	}
	if r.LiveDate == "" {
		v.Add("liveDate", "ライブ日程を選択してください")
	}

	if r.GeneralTickets < 0 {
		v.Add("generalTickets", "0枚以上を選択してください")
	} else if r.GeneralTickets > maxTickets {
		v.Add("generalTickets", fmt.Sprintf("最大%d枚まで", maxTickets))
	}
	if r.StudentTickets < 0 {
		v.Add("studentTickets", "0枚以上を選択してください")
	} else if r.StudentTickets > maxTickets {
		v.Add("studentTickets", fmt.Sprintf("最大%d枚まで", maxTickets))
	}
	if r.GeneralTickets >= 0 && r.StudentTickets >= 0 && r.TotalTickets() < 1 {
		v.Add("generalTickets", "最低1枚のチケットを選択してください")
	}

	if !r.DeliveryMethod.IsValid() {
		v.Add("deliveryMethod", "チケット受取方法を選択してください")
	}
	if !r.PaymentMethod.IsValid() {
		v.Add("paymentMethod", "支払い方法を選択してください")
	}
	if strings.TrimSpace(r.HowDidYouKnow) == "" {
		v.Add("howDidYouKnow", "どちらで知りましたかを選択してください")
	}

	if !r.AgreeCancel {
		v.Add("agreeCancel", "キャンセルポリシーに同意してください")
	}
	if !r.AgreePrivacy {
		v.Add("agreePrivacy", "個人情報の取り扱いに同意してください")
	}

	return v
}
