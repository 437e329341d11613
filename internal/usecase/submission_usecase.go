package usecase

import (
	"context"
	"errors"
	"log"

	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase/interfaces"
)

var ErrNothingToSubmit = errors.New("no pending items to submit")

// ISubmissionUseCase flushes the active order's pending items to the Order
// Service.

type ISubmissionUseCase interface {
	Submit(ctx context.Context, tableID string) (entities.TabView, error)
}

type SubmissionUseCase struct {
	selector ITabSelectorUseCase
	client   interfaces.IOrderServiceClient
	carts    interfaces.IPendingCartRepository
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(selector ITabSelectorUseCase, client interfaces.IOrderServiceClient, carts interfaces.IPendingCartRepository) *SubmissionUseCase {
	return &SubmissionUseCase{selector: selector, client: client, carts: carts}
}

// Submit sends one atomic batch of merged (menu item, total quantity, note)
// tuples: per pending item, the quantity is the server-confirmed sum plus the
// pending delta, so the kitchen never grows duplicate rows for an item it
// already has. On success the pending queue is cleared and the order
// refetched; on failure the pending items are left untouched for retry.
func (u *SubmissionUseCase) Submit(ctx context.Context, tableID string) (entities.TabView, error) {
	order, orders, err := u.selector.ResolveActiveOrder(ctx, tableID)
	if err != nil {
		return entities.TabView{}, err
	}

	pending, err := u.carts.GetByOrderID(ctx, order.ID)
	if err != nil {
		return entities.TabView{}, err
	}
	if len(pending) == 0 {
		return entities.TabView{}, ErrNothingToSubmit
	}

	batch := mergeForSubmission(order, pending)
	log.Printf("[tab][submit] start table_id=%s order_id=%s tuples=%d", tableID, order.ID, len(batch))

	submitted, err := u.client.SubmitItems(ctx, order.ID, batch)
	if err != nil {
		log.Printf("[tab][submit] failed table_id=%s order_id=%s err=%v", tableID, order.ID, err)
		return entities.TabView{}, err
	}

	if err := u.carts.DeleteByOrderID(ctx, order.ID); err != nil {
		// The kitchen already has the batch; resubmitting the same totals is
		// harmless, losing them is not. Surface the store failure.
		log.Printf("[tab][submit] pending clear failed table_id=%s order_id=%s err=%v", tableID, order.ID, err)
		return entities.TabView{}, err
	}

	// Refetch so the next render reflects the new confirmed baseline. The
	// submit response is already a refreshed order; a failed refetch falls
	// back to it.
	refreshed, err := u.client.GetOrder(ctx, order.ID)
	if err != nil {
		log.Printf("[tab][submit] refetch failed table_id=%s order_id=%s err=%v", tableID, order.ID, err)
		refreshed = submitted
	}
	log.Printf("[tab][submit] success table_id=%s order_id=%s confirmed_items=%d", tableID, order.ID, len(refreshed.Items))

	view := Reconcile(refreshed.Items, nil)
	view.OrderID = refreshed.ID
	view.TableID = refreshed.TableID
	view.Status = refreshed.Status
	for _, o := range orders {
		if o.ID != refreshed.ID {
			view.OtherOrderIDs = append(view.OtherOrderIDs, o.ID)
		}
	}
	return view, nil
}

// mergeForSubmission produces one tuple per pending menu item. The note is
// the pending note when set, else the item's confirmed note.
func mergeForSubmission(order entities.Order, pending []entities.PendingLineItem) []entities.SubmissionItem {
	batch := make([]entities.SubmissionItem, 0, len(pending))
	for _, p := range pending {
		note := p.Note
		if note == "" {
			for _, c := range order.Items {
				if c.MenuItemID == p.MenuItemID && c.Note != "" {
					note = c.Note
					break
				}
			}
		}
		batch = append(batch, entities.SubmissionItem{
			MenuItemID: p.MenuItemID,
			Quantity:   order.ConfirmedQuantity(p.MenuItemID) + p.Quantity,
			Note:       note,
		})
	}
	return batch
}
