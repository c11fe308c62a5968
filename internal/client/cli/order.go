package cli

import (
	"context"
	"os"
)

// Order prompts for an order id and shows its confirmation view.
func (a *App) Order(ctx context.Context) error {
	return a.requireAuth(ctx, func(ctx context.Context) error {
		id, err := getID(a.reader, "Enter order id", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		return a.showOrder(ctx, id)
	})
}

// showOrder is the confirmation view shared by the order command and the
// successful checkout paths.
func (a *App) showOrder(ctx context.Context, id int64) error {
	details, err := a.orderService.Details(ctx, id)
	if err != nil {
		printlnFn("Could not load the order:", err.Error())
		return err
	}
	renderOrder(os.Stdout, details)
	return nil
}
