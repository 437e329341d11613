package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase/interfaces"
)

var (
	ErrTransferInProgress     = errors.New("cart transfer already in progress")
	ErrTransferTargetNotFound = errors.New("transfer target order not found on table")
)

// ICartTransferUseCase folds the external menu-browsing cart into the pending
// cart of a specific order, exactly once per batch.

type ICartTransferUseCase interface {
	Transfer(ctx context.Context, tableID string) (int, error)
}

type CartTransferUseCase struct {
	client   interfaces.IOrderServiceClient
	sessions interfaces.ISessionStore
	carts    interfaces.IPendingCartRepository
	menuCart interfaces.IMenuCartRepository
	guards   *transferGuards
}

var _ ICartTransferUseCase = (*CartTransferUseCase)(nil)

func NewCartTransferUseCase(
	client interfaces.IOrderServiceClient,
	sessions interfaces.ISessionStore,
	carts interfaces.IPendingCartRepository,
	menuCart interfaces.IMenuCartRepository,
	cooldown time.Duration,
) *CartTransferUseCase {
	return &CartTransferUseCase{
		client:   client,
		sessions: sessions,
		carts:    carts,
		menuCart: menuCart,
		guards:   newTransferGuards(cooldown),
	}
}

// Transfer drains the menu cart into the target order's pending items and
// returns how many cart entries were folded in.
//
// Target resolution: the pending-order handoff if armed (consumed on read),
// else the session active-order pointer, else the table's first active order.
// A target missing from the table's order list aborts the transfer but still
// clears the menu cart, so stale session data cannot cause a retry loop.
func (u *CartTransferUseCase) Transfer(ctx context.Context, tableID string) (int, error) {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return 0, ErrInvalidTableID
	}

	guard := u.guards.forTable(tableID)
	gen, ok := guard.TryBegin()
	if !ok {
		log.Printf("[tab][transfer] suppressed by guard table_id=%s", tableID)
		return 0, ErrTransferInProgress
	}

	moved, err := u.transfer(ctx, tableID)
	if err != nil || moved == 0 {
		// Nothing landed in the pending store, so there is nothing a re-fire
		// could double; no cooldown needed.
		guard.Abort(gen)
		return moved, err
	}
	guard.Finish(gen)
	return moved, nil
}

func (u *CartTransferUseCase) transfer(ctx context.Context, tableID string) (int, error) {
	items, err := u.menuCart.Items(ctx, tableID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	orders, err := u.client.ListActiveOrders(ctx, tableID)
	if err != nil {
		return 0, err
	}

	targetID, err := u.sessions.ConsumePendingOrderID(ctx, tableID)
	if err != nil {
		log.Printf("[tab][transfer] handoff read failed table_id=%s err=%v", tableID, err)
	}
	if targetID == "" {
		targetID, err = u.sessions.GetActiveOrderID(ctx, tableID)
		if err != nil {
			log.Printf("[tab][transfer] pointer read failed table_id=%s err=%v", tableID, err)
		}
	}
	if targetID == "" && len(orders) > 0 {
		targetID = orders[0].ID
	}

	if _, ok := findOrder(orders, targetID); !ok {
		// Stale target: drop the batch rather than retry it forever against
		// data that can no longer resolve.
		log.Printf("[tab][transfer] stale target table_id=%s order_id=%s", tableID, targetID)
		if err := u.menuCart.Clear(ctx, tableID); err != nil {
			log.Printf("[tab][transfer] clear after stale target failed table_id=%s err=%v", tableID, err)
		}
		return 0, ErrTransferTargetNotFound
	}

	pending, err := u.carts.GetByOrderID(ctx, targetID)
	if err != nil {
		return 0, err
	}

	for _, mc := range items {
		if idx := findPending(pending, mc.ID); idx >= 0 {
			pending[idx].Quantity += mc.Quantity
			if mc.Note != "" {
				pending[idx].Note = mc.Note
			}
			continue
		}
		pending = append(pending, pendingFromMenuCartItem(mc))
	}

	if err := u.carts.Save(ctx, tableID, targetID, pending); err != nil {
		return 0, err
	}
	if err := u.menuCart.Clear(ctx, tableID); err != nil {
		log.Printf("[tab][transfer] clear after transfer failed table_id=%s err=%v", tableID, err)
	}
	log.Printf("[tab][transfer] success table_id=%s order_id=%s items=%d", tableID, targetID, len(items))

	return len(items), nil
}

func pendingFromMenuCartItem(mc entities.MenuCartItem) entities.PendingLineItem {
	return entities.PendingLineItem{
		MenuItemID: mc.ID,
		Name:       mc.Name,
		UnitPrice:  mc.Price,
		Quantity:   mc.Quantity,
		Note:       mc.Note,
	}
}
