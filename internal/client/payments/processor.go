// Package payments talks to the third-party card processor. It covers the
// two client-side steps of the handshake: tokenizing the entered card into a
// payment-method id, and confirming a charge with the client secret issued
// by our own backend.
package payments

import "context"

// Status is a payment-intent state reported by the processor. The processor
// can return more states than a plain success/failure pair; only
// StatusSucceeded means the charge is captured.
type Status string

const (
	StatusSucceeded      Status = "succeeded"
	StatusProcessing     Status = "processing"
	StatusRequiresAction Status = "requires_action"
	StatusCanceled       Status = "canceled"
)

// Card is the raw card input collected from the user. It is sent only to
// the processor, never to the storefront API.
type Card struct {
	Number   string
	ExpMonth string
	ExpYear  string
	CVC      string
}

// Intent is the processor's view of a charge attempt.
type Intent struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// Processor is the card processor surface the checkout flow depends on.
// Tests substitute fakes.
type Processor interface {
	// CreatePaymentMethod tokenizes the card and returns a payment-method id.
	// No charge is attempted at this point.
	CreatePaymentMethod(ctx context.Context, card Card) (string, error)

	// ConfirmPayment asks the processor to capture the charge authorized by
	// clientSecret and reports the resulting intent state.
	ConfirmPayment(ctx context.Context, clientSecret string) (*Intent, error)
}
