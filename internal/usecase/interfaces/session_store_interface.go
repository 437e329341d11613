package interfaces

import "context"

// ISessionStore holds the per-table session slots that survive page
// navigation: the active-order pointer and the pending-order handoff.
//
// The handoff slot is a write-once/read-once message between page transitions:
// ConsumePendingOrderID returns it and deletes it atomically. Both slots
// return "" when unset; session expiry is the store's TTL, never an explicit
// application delete.

type ISessionStore interface {
	GetActiveOrderID(ctx context.Context, tableID string) (string, error)
	SetActiveOrderID(ctx context.Context, tableID, orderID string) error
	SetPendingOrderID(ctx context.Context, tableID, orderID string) error
	ConsumePendingOrderID(ctx context.Context, tableID string) (string, error)
}
