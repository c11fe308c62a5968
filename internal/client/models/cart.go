package models

import "github.com/shopspring/decimal"

// Product is the subset of a catalog product embedded in cart and order
// lines.
type Product struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// CartLine is a single position in the cart snapshot. The snapshot is always
// re-fetched from the server and discarded when the view is left.
type CartLine struct {
	ID       int64           `json:"id"`
	Product  Product         `json:"product"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// Total returns price multiplied by quantity for this line.
func (l CartLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// CartTotal sums price*quantity over the given lines.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

// CheckoutSummary is the server-computed order summary fetched fresh on
// every checkout visit.
type CheckoutSummary struct {
	CartItems []CartLine      `json:"cartItems"`
	Total     decimal.Decimal `json:"total"`
	Shipping  decimal.Decimal `json:"shipping"`
}

// GrandTotal is the amount the buyer is charged: items total plus shipping.
func (s CheckoutSummary) GrandTotal() decimal.Decimal {
	return s.Total.Add(s.Shipping)
}
