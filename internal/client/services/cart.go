package services

import (
	"context"
	"fmt"

	"github.com/portfolioimane/storefront-cli/internal/client/api"
	"github.com/portfolioimane/storefront-cli/internal/client/models"
	"github.com/portfolioimane/storefront-cli/internal/client/store"
	"github.com/portfolioimane/storefront-cli/internal/logging"
)

// CartService owns the cart view's data: the snapshot is fetched fresh per
// visit and discarded afterwards; only the item count is cached (in the
// store), and only with server-reported values.
type CartService interface {
	Items(ctx context.Context) ([]models.CartLine, error)
	Remove(ctx context.Context, id int64) error
	RefreshCount(ctx context.Context) error
}

type cartService struct {
	client api.Client
	store  *store.Store
	log    logging.Logger
}

func NewCartService(client api.Client, st *store.Store, log logging.Logger) CartService {
	return &cartService{client: client, store: st, log: log}
}

func (c *cartService) Items(ctx context.Context) ([]models.CartLine, error) {
	items, err := c.client.Cart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return items, nil
}

// Remove deletes a line and then re-fetches the count so the cached value
// always reflects the last successful server response. A failed refresh
// after a successful removal keeps the previous count and is only logged.
func (c *cartService) Remove(ctx context.Context, id int64) error {
	if err := c.client.RemoveCartItem(ctx, id); err != nil {
		return fmt.Errorf("failed to remove cart item %d: %w", id, err)
	}

	if err := c.RefreshCount(ctx); err != nil {
		c.log.Warn(ctx, "failed to refresh cart count after removal", "error", err.Error())
	}
	return nil
}

func (c *cartService) RefreshCount(ctx context.Context) error {
	count, err := c.client.CartCount(ctx)
	if err != nil {
		return err
	}
	c.store.SetCartCount(count)
	return nil
}
