// Package api wraps the remote storefront HTTP API. Every outbound call
// automatically carries the bearer token from the session store; callers
// never attach it themselves. Each call is a single attempt: no retry, no
// backoff, failures propagate to the caller.
package api

import (
	"context"

	"github.com/portfolioimane/storefront-cli/internal/client/models"
)

// TokenSource supplies the current bearer token, empty when logged out.
// The session store satisfies this interface.
type TokenSource interface {
	Token() string
}

// Client is the surface of the remote storefront API used by the services
// layer. Tests substitute fakes.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (string, error)

	Cart(ctx context.Context) ([]models.CartLine, error)
	RemoveCartItem(ctx context.Context, id int64) error
	CartCount(ctx context.Context) (int, error)

	CheckoutSummary(ctx context.Context) (*models.CheckoutSummary, error)
	PlaceCashOrder(ctx context.Context) (*OrderPlacement, error)
	CreateWalletPayment(ctx context.Context) (string, error)
	ProcessCardPayment(ctx context.Context, paymentMethodID string) (*CardPayment, error)

	OrderDetails(ctx context.Context, id int64) (*models.OrderDetails, error)
}

// LoginResponse carries the token and user record returned by POST /api/login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterRequest is the payload for POST /api/register. The confirmation
// field is validated server-side as well; the client checks it first to
// avoid a round trip.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// OrderPlacement is the response of order-creating endpoints. OrderID zero
// means the server did not report one; callers must treat that as failure.
type OrderPlacement struct {
	OrderID int64 `json:"order_id"`
}

// CardPayment is the response of POST /api/process-payment: the processor
// client secret to confirm the charge with, the id of the order the server
// created for it, and an optional server-reported error. The order id must
// not be trusted until the processor confirms the charge.
type CardPayment struct {
	ClientSecret string `json:"client_secret"`
	OrderID      int64  `json:"order_id"`
	ServerError  string `json:"error"`
}
