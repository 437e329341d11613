package interfaces

import (
	"context"
	"restaurant_tabs/internal/domain/entities"
)

// IMenuCartRepository is the one-directional surface of the external
// menu-browsing cart. The tabs service only drains it: read the items, then
// clear. It never writes items into it.

type IMenuCartRepository interface {
	Items(ctx context.Context, tableID string) ([]entities.MenuCartItem, error)
	Clear(ctx context.Context, tableID string) error
}
