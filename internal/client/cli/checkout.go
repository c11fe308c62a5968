package cli

import (
	"context"
	"errors"
	"os"

	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/client/payments"
	"github.com/portfolioimane/storefront-cli/internal/client/services"
	"github.com/portfolioimane/storefront-cli/internal/common"
)

// Checkout runs the interactive checkout flow: fetch the summary, pick one
// payment method and execute that path. Every failure is terminal for the
// flow; there is no automatic retry, the user re-runs the command.
func (a *App) Checkout(ctx context.Context) error {
	return a.requireAuth(ctx, a.checkout)
}

func (a *App) checkout(ctx context.Context) error {
	summary, err := a.checkoutService.Summary(ctx)
	if err != nil {
		printlnFn("Could not load checkout:", err.Error())
		return err
	}

	if len(summary.CartItems) == 0 {
		printlnFn("Your cart is empty.")
		return nil
	}

	renderSummary(os.Stdout, summary)

	choice, err := getSimpleText(a.reader, "Payment method (card/wallet/cod)", os.Stdout)
	if err != nil {
		return err
	}
	method, err := models.ParsePaymentMethod(choice)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	switch method {
	case models.MethodCashOnDelivery:
		return a.payWithCash(ctx)
	case models.MethodWallet:
		return a.payWithWallet(ctx)
	default:
		return a.payWithCard(ctx)
	}
}

func (a *App) payWithCash(ctx context.Context) error {
	id, err := a.checkoutService.PlaceCashOrder(ctx)
	if err != nil {
		printlnFn("Could not place the order. Please try again.")
		return err
	}
	printlnFn("Order placed. You pay on delivery.")
	return a.showOrder(ctx, id)
}

// payWithWallet hands the buyer off to the wallet provider. The payment
// completes on the provider's side; no order id exists on ours yet.
func (a *App) payWithWallet(ctx context.Context) error {
	url, err := a.checkoutService.StartWalletPayment(ctx)
	if err != nil {
		printlnFn("Could not start the wallet payment. Please try again.")
		return err
	}
	printlnFn("Complete your payment at:")
	printlnFn(url)
	return nil
}

func (a *App) payWithCard(ctx context.Context) error {
	card, err := a.readCard()
	if err != nil {
		return err
	}

	id, err := a.checkoutService.PayWithCard(ctx, card)
	if err != nil {
		a.log.Warn(ctx, "card payment failed", "error", err.Error())
		a.reportCardFailure(err)
		return err
	}

	printlnFn("Payment succeeded.")
	return a.showOrder(ctx, id)
}

func (a *App) readCard() (payments.Card, error) {
	var zero payments.Card

	number, err := getSimpleText(a.reader, "Card number", os.Stdout)
	if err != nil {
		return zero, err
	}
	expMonth, err := getSimpleText(a.reader, "Expiry month (MM)", os.Stdout)
	if err != nil {
		return zero, err
	}
	expYear, err := getSimpleText(a.reader, "Expiry year (YYYY)", os.Stdout)
	if err != nil {
		return zero, err
	}
	cvc, err := getPassword("CVC: ", os.Stdout)
	if err != nil {
		return zero, err
	}
	defer common.WipeByteArray(cvc)

	return payments.Card{
		Number:   number,
		ExpMonth: expMonth,
		ExpYear:  expYear,
		CVC:      string(cvc),
	}, nil
}

// reportCardFailure translates a card pipeline error into a user message.
// The wording depends on whether a charge may have been attempted: before
// the confirm step retrying is always safe, after it the buyer should check
// their statement first.
func (a *App) reportCardFailure(err error) {
	var cardErr *services.CardPaymentError
	if !errors.As(err, &cardErr) {
		printlnFn("Payment failed. Please try again.")
		return
	}

	if errors.Is(err, services.ErrPaymentNotConfirmed) {
		printlnFn("Your payment was not confirmed. No order has been placed; check with your bank before retrying.")
		return
	}

	if cardErr.ChargeAttempted() {
		printlnFn("The payment could not be completed. Check your card statement before retrying.")
		return
	}

	printlnFn("Payment failed:", cardErr.Err.Error())
	printlnFn("No charge was made. Please try again.")
}
