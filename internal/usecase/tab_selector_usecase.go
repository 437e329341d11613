package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase/interfaces"
)

var (
	ErrInvalidTableID  = errors.New("invalid table id")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrOrderNotOnTable = errors.New("order does not belong to this table")
)

// ITabSelectorUseCase resolves which order ("tab") is in focus for a table.
//
// Resolution precedence, each source used only if the prior one is absent or
// names an order missing from the fresh order list:
//
//	1. the pending-order handoff (consumed on read, valid or not)
//	2. the session active-order pointer
//	3. the first order returned by the Order Service
//
// A table with zero active orders gets exactly one created before resolution,
// so any page that needs a tab always finds one.

type ITabSelectorUseCase interface {
	ResolveActiveOrder(ctx context.Context, tableID string) (entities.Order, []entities.Order, error)
	SelectOrder(ctx context.Context, tableID, orderID string) (entities.Order, error)
	ArmHandoff(ctx context.Context, tableID, orderID string) error
}

type TabSelectorUseCase struct {
	client   interfaces.IOrderServiceClient
	sessions interfaces.ISessionStore
}

var _ ITabSelectorUseCase = (*TabSelectorUseCase)(nil)

func NewTabSelectorUseCase(client interfaces.IOrderServiceClient, sessions interfaces.ISessionStore) *TabSelectorUseCase {
	return &TabSelectorUseCase{client: client, sessions: sessions}
}

// ResolveActiveOrder returns the focused order plus the table's full active
// order list (so callers get split-billing siblings without a second fetch).
// Whichever id wins is written back to the session pointer.
func (u *TabSelectorUseCase) ResolveActiveOrder(ctx context.Context, tableID string) (entities.Order, []entities.Order, error) {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return entities.Order{}, nil, ErrInvalidTableID
	}

	orders, err := u.client.ListActiveOrders(ctx, tableID)
	if err != nil {
		log.Printf("[tab][selector] list active orders failed table_id=%s err=%v", tableID, err)
		return entities.Order{}, nil, err
	}

	if len(orders) == 0 {
		log.Printf("[tab][selector] no active orders, creating one table_id=%s", tableID)
		created, err := u.client.CreateOrder(ctx, tableID)
		if err != nil {
			return entities.Order{}, nil, err
		}
		orders = []entities.Order{created}
	}

	chosen := u.resolveFocus(ctx, tableID, orders)

	// Side effect of resolution: the winner becomes the session pointer. A
	// failed write only costs re-resolution on the next page load.
	if err := u.sessions.SetActiveOrderID(ctx, tableID, chosen.ID); err != nil {
		log.Printf("[tab][selector] pointer write failed table_id=%s order_id=%s err=%v", tableID, chosen.ID, err)
	}
	log.Printf("[tab][selector] resolved table_id=%s order_id=%s orders=%d", tableID, chosen.ID, len(orders))

	return chosen, orders, nil
}

func (u *TabSelectorUseCase) resolveFocus(ctx context.Context, tableID string, orders []entities.Order) entities.Order {
	// The handoff slot is consumed whether or not it names a live order.
	handoff, err := u.sessions.ConsumePendingOrderID(ctx, tableID)
	if err != nil {
		log.Printf("[tab][selector] handoff read failed table_id=%s err=%v", tableID, err)
	}
	if o, ok := findOrder(orders, handoff); ok {
		return o
	}
	if handoff != "" {
		log.Printf("[tab][selector] stale handoff table_id=%s order_id=%s", tableID, handoff)
	}

	pointer, err := u.sessions.GetActiveOrderID(ctx, tableID)
	if err != nil {
		log.Printf("[tab][selector] pointer read failed table_id=%s err=%v", tableID, err)
	}
	if o, ok := findOrder(orders, pointer); ok {
		return o
	}
	if pointer != "" {
		log.Printf("[tab][selector] stale pointer table_id=%s order_id=%s", tableID, pointer)
	}

	return orders[0]
}

// SelectOrder repoints the session pointer at another of the table's active
// orders (split billing). The id must belong to the table.
func (u *TabSelectorUseCase) SelectOrder(ctx context.Context, tableID, orderID string) (entities.Order, error) {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return entities.Order{}, ErrInvalidTableID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	orders, err := u.client.ListActiveOrders(ctx, tableID)
	if err != nil {
		return entities.Order{}, err
	}
	o, ok := findOrder(orders, orderID)
	if !ok {
		return entities.Order{}, ErrOrderNotOnTable
	}

	if err := u.sessions.SetActiveOrderID(ctx, tableID, o.ID); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[tab][selector] selected table_id=%s order_id=%s", tableID, o.ID)
	return o, nil
}

// ArmHandoff records "the next cart transfer targets this order" before the
// diner navigates to the menu page.
func (u *TabSelectorUseCase) ArmHandoff(ctx context.Context, tableID, orderID string) error {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return ErrInvalidTableID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrInvalidOrderID
	}
	if err := u.sessions.SetPendingOrderID(ctx, tableID, orderID); err != nil {
		return err
	}
	log.Printf("[tab][selector] handoff armed table_id=%s order_id=%s", tableID, orderID)
	return nil
}

func findOrder(orders []entities.Order, id string) (entities.Order, bool) {
	if id == "" {
		return entities.Order{}, false
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return entities.Order{}, false
}
