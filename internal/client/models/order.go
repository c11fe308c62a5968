package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the mutually exclusive ways an order can be paid.
type PaymentMethod string

const (
	MethodCard           PaymentMethod = "card"
	MethodWallet         PaymentMethod = "wallet"
	MethodCashOnDelivery PaymentMethod = "cod"
)

// ParsePaymentMethod maps user input onto a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCard, MethodWallet, MethodCashOnDelivery:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// OrderItem is a line of a finalized order.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Product   Product         `json:"product"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

// Total returns price multiplied by quantity for this item.
func (i OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Order is the read-only projection of a finalized order. The server owns
// the entity; the client fetches it by id for the confirmation view.
type Order struct {
	ID            int64           `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	OrderItems    []OrderItem     `json:"order_items"`
}

// OrderDetails is the confirmation-view payload: the order plus the
// shipping cost the server applied to it.
type OrderDetails struct {
	Order    Order           `json:"order"`
	Shipping decimal.Decimal `json:"shipping"`
}
