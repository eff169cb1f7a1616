package commands

import (
	"fmt"
	"strconv"
	"strings"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/infra/mail"
)

const confirmationSubject = "【フルートライブ】チケットご予約ありがとうございます"

// paymentInstructions holds the static per-method payment guidance. Exactly
// three methods are recognized; each has its own block.
var paymentInstructions = map[reservation.PaymentMethod]string{
	reservation.PaymentBank: `
【銀行振込の場合】
振込先: 三井住友銀行 池袋支店 普通 xxxxxxx
口座名義: ヨシハラ リエ
振込期限: お申し込みから1週間以内
※振込手数料はお客様負担となります`,
	reservation.PaymentPayPay: `
【PayPayの場合】
PayPay ID: fueneko5656
支払い期限: お申し込みから1週間以内`,
	reservation.PaymentCash: `
【現金の場合】
ライブ当日に受付でお支払いください
※お釣りのないようご準備をお願いします`,
}

// buildConfirmationMail renders the plain-text confirmation from the current
// configuration merged with the submitted reservation.
func buildConfirmationMail(info event.LiveInfo, r *reservation.Reservation) mail.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "%s様\n\n", r.Name)
	b.WriteString("この度は、フルートライブにお申し込みいただき、ありがとうございます。\n")
	b.WriteString("以下の内容でご予約を承りました。\n\n")

	b.WriteString("■ご予約内容\n")
	fmt.Fprintf(&b, "・お名前: %s\n", r.Name)
	fmt.Fprintf(&b, "・ライブ日程: %s\n", r.LiveDate)
	fmt.Fprintf(&b, "・チケット詳細: 一般 %d枚、学生 %d枚\n", r.GeneralTickets, r.StudentTickets)
	fmt.Fprintf(&b, "・受取方法: %s\n", r.DeliveryMethod.Label())
	fmt.Fprintf(&b, "・合計金額: ¥%s\n", formatYen(r.TotalAmount))
	fmt.Fprintf(&b, "・支払い方法: %s\n\n", r.PaymentMethod.Label())

	b.WriteString("■お支払いについて")
	b.WriteString(paymentInstructions[r.PaymentMethod])
	b.WriteString("\n\n")

	b.WriteString("■会場アクセス\n")
	fmt.Fprintf(&b, "%s\n", info.Venue)
	if info.VenueAddress != "" {
		fmt.Fprintf(&b, "住所: %s\n", info.VenueAddress)
	}
	b.WriteString("開場: 開演の30分前\n\n")

	b.WriteString("■注意事項\n")
	fmt.Fprintf(&b, "・チケット受取: %s\n", r.DeliveryMethod.Label())
	b.WriteString("・座席は当日先着順でのご案内となります\n")
	b.WriteString("・録音・録画はご遠慮ください\n")
	if info.Notes != "" {
		fmt.Fprintf(&b, "・%s\n", info.Notes)
	}
	b.WriteString("\n")

	b.WriteString("■キャンセルポリシー\n")
	fmt.Fprintf(&b, "%s\n\n", info.CancelPolicy)

	b.WriteString("■お問い合わせ\n")
	b.WriteString("吉原りえ\n")
	b.WriteString("メール: contact@lietoposto.com\n\n")

	b.WriteString("素敵な音楽の時間をお楽しみに！\n")
	b.WriteString("心よりお待ちしております。")

	return mail.Message{
		To:      r.Email,
		Subject: confirmationSubject,
		Text:    b.String(),
	}
}

// formatYen inserts thousands separators, e.g. 11200 -> "11,200".
func formatYen(amount int) string {
	s := strconv.Itoa(amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
