package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolioimane/storefront-cli/internal/client/api"
	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/client/payments"
	"github.com/portfolioimane/storefront-cli/internal/client/store"
	"github.com/portfolioimane/storefront-cli/internal/common"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// CardStage identifies the step of the card handshake a failure happened in.
type CardStage string

const (
	// StageTokenize: the card could not be turned into a payment method.
	// Nothing was sent to the storefront API.
	StageTokenize CardStage = "tokenize"
	// StageCreateOrder: the storefront API rejected the payment request or
	// reported an error of its own. The processor was not asked to charge.
	StageCreateOrder CardStage = "create_order"
	// StageConfirm: the processor was asked to capture the charge and did
	// not report success. An order may exist server-side in pending state,
	// but it must not be treated as placed.
	StageConfirm CardStage = "confirm"
)

// ErrPaymentNotConfirmed marks processor states (processing,
// requires_action) that are neither success nor a plain decline. The charge
// may still settle, but the client must not treat the order as placed.
var ErrPaymentNotConfirmed = errors.New("payment not confirmed")

// CardPaymentError is the tagged failure of the card pipeline. The stage
// distinguishes "no charge attempted" from "charge attempted but not
// confirmed".
type CardPaymentError struct {
	Stage CardStage
	Err   error
}

func (e *CardPaymentError) Error() string {
	return fmt.Sprintf("card payment failed at %s: %v", e.Stage, e.Err)
}

func (e *CardPaymentError) Unwrap() error { return e.Err }

// ChargeAttempted reports whether the processor was asked to capture the
// charge before the failure.
func (e *CardPaymentError) ChargeAttempted() bool { return e.Stage == StageConfirm }

// CheckoutService drives the checkout flow: summary fetch, then exactly one
// of the three payment paths. Nothing is retried; every failure is terminal
// for the attempt and requires explicit re-initiation by the user.
type CheckoutService interface {
	Summary(ctx context.Context) (*models.CheckoutSummary, error)

	// PlaceCashOrder runs the cash-on-delivery path and returns the order id.
	PlaceCashOrder(ctx context.Context) (int64, error)

	// StartWalletPayment returns the processor-owned redirect URL; the
	// handshake completes out-of-process after the user follows it.
	StartWalletPayment(ctx context.Context) (string, error)

	// PayWithCard runs the multi-step card handshake and returns the order
	// id, which is trusted only once the processor confirms the charge.
	// Failures are *CardPaymentError.
	PayWithCard(ctx context.Context, card payments.Card) (int64, error)
}

type checkoutService struct {
	client    api.Client
	processor payments.Processor
	store     *store.Store
	log       logging.Logger
}

func NewCheckoutService(client api.Client, processor payments.Processor, st *store.Store, log logging.Logger) CheckoutService {
	return &checkoutService{client: client, processor: processor, store: st, log: log}
}

func (s *checkoutService) Summary(ctx context.Context) (*models.CheckoutSummary, error) {
	summary, err := s.client.CheckoutSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout summary: %w", err)
	}
	return summary, nil
}

func (s *checkoutService) PlaceCashOrder(ctx context.Context) (int64, error) {
	placement, err := s.client.PlaceCashOrder(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", common.ErrPaymentFailed, err)
	}
	// Success is reachable only through a response that names the order.
	if placement.OrderID == 0 {
		return 0, common.ErrMissingOrderID
	}

	s.log.Info(ctx, "order placed", "method", models.MethodCashOnDelivery, "order_id", placement.OrderID)
	s.refreshCartCount(ctx)
	return placement.OrderID, nil
}

func (s *checkoutService) StartWalletPayment(ctx context.Context) (string, error) {
	redirectURL, err := s.client.CreateWalletPayment(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrPaymentFailed, err)
	}
	if redirectURL == "" {
		return "", common.ErrMissingRedirectURL
	}

	s.log.Info(ctx, "wallet payment created", "method", models.MethodWallet)
	return redirectURL, nil
}

// PayWithCard is a sequential pipeline; each step's failure short-circuits
// the remainder with a stage tag.
func (s *checkoutService) PayWithCard(ctx context.Context, card payments.Card) (int64, error) {
	// 1. Tokenize. On failure nothing has reached the storefront API yet.
	paymentMethodID, err := s.processor.CreatePaymentMethod(ctx, card)
	if err != nil {
		return 0, &CardPaymentError{Stage: StageTokenize, Err: err}
	}

	// 2. Hand the payment method to the backend. It answers with the client
	// secret to confirm the charge with, and the id of the order it created
	// for it — pending, not yet paid.
	payment, err := s.client.ProcessCardPayment(ctx, paymentMethodID)
	if err != nil {
		return 0, &CardPaymentError{Stage: StageCreateOrder, Err: err}
	}

	// 3. A server-reported error aborts before the processor is contacted.
	if payment.ServerError != "" {
		return 0, &CardPaymentError{Stage: StageCreateOrder, Err: errors.New(payment.ServerError)}
	}

	// 4. Ask the processor to capture the charge.
	intent, err := s.processor.ConfirmPayment(ctx, payment.ClientSecret)
	if err != nil {
		return 0, &CardPaymentError{Stage: StageConfirm, Err: err}
	}

	// 5. Only a succeeded intent makes the step-2 order id trustworthy.
	switch intent.Status {
	case payments.StatusSucceeded:
		// fall through
	case payments.StatusProcessing, payments.StatusRequiresAction:
		return 0, &CardPaymentError{
			Stage: StageConfirm,
			Err:   fmt.Errorf("%w: processor status %q", ErrPaymentNotConfirmed, intent.Status),
		}
	default:
		return 0, &CardPaymentError{
			Stage: StageConfirm,
			Err:   fmt.Errorf("%w: processor status %q", common.ErrPaymentFailed, intent.Status),
		}
	}

	if payment.OrderID == 0 {
		return 0, &CardPaymentError{Stage: StageConfirm, Err: common.ErrMissingOrderID}
	}

	s.log.Info(ctx, "order placed", "method", models.MethodCard, "order_id", payment.OrderID)
	s.refreshCartCount(ctx)
	return payment.OrderID, nil
}

// refreshCartCount re-fetches the count after a placed order emptied the
// cart server-side. Best effort: the stale value is kept on failure.
func (s *checkoutService) refreshCartCount(ctx context.Context) {
	count, err := s.client.CartCount(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to refresh cart count after order", "error", err.Error())
		return
	}
	s.store.SetCartCount(count)
}
