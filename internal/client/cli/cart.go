package cli

import (
	"context"
	"os"
)

// Cart fetches a fresh cart snapshot and renders it. The snapshot is never
// cached; leaving and re-entering the view fetches again.
func (a *App) Cart(ctx context.Context) error {
	return a.requireAuth(ctx, func(ctx context.Context) error {
		lines, err := a.cartService.Items(ctx)
		if err != nil {
			printlnFn("Could not load cart:", err.Error())
			return err
		}

		if len(lines) == 0 {
			printlnFn("Your cart is empty.")
			return nil
		}

		renderCartLines(os.Stdout, lines)
		return nil
	})
}

// RemoveItem deletes one cart line by id and reports the server-confirmed
// item count. The count shown never comes from local arithmetic.
func (a *App) RemoveItem(ctx context.Context) error {
	return a.requireAuth(ctx, func(ctx context.Context) error {
		id, err := getID(a.reader, "Enter cart line id to remove", os.Stdout)
		if err != nil {
			printlnFn(err.Error())
			return err
		}

		if err := a.cartService.Remove(ctx, id); err != nil {
			printlnFn("Could not remove item:", err.Error())
			return err
		}

		printlnFn("Removed. Items in cart:", a.store.CartCount())
		return nil
	})
}
