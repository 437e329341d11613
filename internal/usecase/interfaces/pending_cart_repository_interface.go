package interfaces

import (
	"context"
	"restaurant_tabs/internal/domain/entities"
)

// IPendingCartRepository abstracts durable storage for the per-order queue of
// unsubmitted line items.
//
// The store is an explicit get/save/delete repository: loaded on demand,
// rewritten whole on every mutation. An order with no pending items has no
// record at all (GetByOrderID returns an empty slice, not an error).

type IPendingCartRepository interface {
	GetByOrderID(ctx context.Context, orderID string) ([]entities.PendingLineItem, error)
	Save(ctx context.Context, tableID, orderID string, items []entities.PendingLineItem) error
	DeleteByOrderID(ctx context.Context, orderID string) error
	ListOrderIDsByTableID(ctx context.Context, tableID string) ([]string, error)
}
