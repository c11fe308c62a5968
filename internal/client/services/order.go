package services

import (
	"context"
	"fmt"

	"github.com/portfolioimane/storefront-cli/internal/client/api"
	"github.com/portfolioimane/storefront-cli/internal/client/models"
)

// OrderService fetches finalized orders for the confirmation view.
type OrderService interface {
	Details(ctx context.Context, id int64) (*models.OrderDetails, error)
}

type orderService struct {
	client api.Client
}

func NewOrderService(client api.Client) OrderService {
	return &orderService{client: client}
}

func (o *orderService) Details(ctx context.Context, id int64) (*models.OrderDetails, error) {
	details, err := o.client.OrderDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", id, err)
	}
	return details, nil
}
