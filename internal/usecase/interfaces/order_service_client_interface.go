package interfaces

import (
	"context"
	"restaurant_tabs/internal/domain/entities"
)

// IOrderServiceClient abstracts the external Order Service, the authoritative
// owner of confirmed order state.
//
// ListActiveOrders must be fail-soft: when the active-orders endpoint errors,
// implementations fall back to listing all orders for the table and filtering
// with entities.OrderStatus.IsActive.

type IOrderServiceClient interface {
	ListActiveOrders(ctx context.Context, tableID string) ([]entities.Order, error)
	CreateOrder(ctx context.Context, tableID string) (entities.Order, error)
	SubmitItems(ctx context.Context, orderID string, items []entities.SubmissionItem) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}
