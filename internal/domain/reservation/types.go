package reservation

// DeliveryMethod is how the submitter receives their tickets.
type DeliveryMethod string

const (
	DeliveryPickup DeliveryMethod = "pickup"
	DeliveryPostal DeliveryMethod = "postal"
)

func (m DeliveryMethod) IsValid() bool {
	switch m {
	case DeliveryPickup, DeliveryPostal:
		return true
	default:
		return false
	}
}

// Label returns the human-readable Japanese label used in the reservation log
// and the confirmation mail. Unknown values pass through unchanged so a log
// row never loses information.
func (m DeliveryMethod) Label() string {
	switch m {
	case DeliveryPickup:
		return "当日受取（無料）"
	case DeliveryPostal:
		return "郵送（¥200）"
	default:
		return string(m)
	}
}

type PaymentMethod string

const (
	PaymentBank   PaymentMethod = "bank"
	PaymentPayPay PaymentMethod = "paypay"
	PaymentCash   PaymentMethod = "cash"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentBank, PaymentPayPay, PaymentCash:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) Label() string {
	switch m {
	case PaymentBank:
		return "銀行振込（三井住友銀行）"
	case PaymentPayPay:
		return "PayPay（fueneko5656）"
	case PaymentCash:
		return "現金（当日受付）"
	default:
		return string(m)
	}
}
