package reservation

// Prices is the pricing snapshot taken from the event configuration at
// submission time. Amounts are whole yen.
type Prices struct {
	General  int
	Student  int
	Delivery int
}

type PriceCalculator interface {
	Total(generalTickets, studentTickets int, method DeliveryMethod, prices Prices) int
}

// DefaultPriceCalculator sums the ticket tiers and adds the delivery fee for
// postal delivery only. Any other method value, recognized or not, costs
// nothing extra.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (pc *DefaultPriceCalculator) Total(generalTickets, studentTickets int, method DeliveryMethod, prices Prices) int {
	total := generalTickets*prices.General + studentTickets*prices.Student
	if method == DeliveryPostal {
		total += prices.Delivery
	}
	return total
}
