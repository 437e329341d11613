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
	ErrInvalidMenuItemID      = errors.New("invalid menu item id")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrQuantityBelowConfirmed = errors.New("requested quantity below confirmed quantity")
	ErrUnknownMenuItem        = errors.New("menu item not on the tab and no name/price provided")
)

// ITabViewUseCase produces the reconciled tab view and applies the local edits
// (quantity, note) that mutate the pending cart.

type ITabViewUseCase interface {
	LoadTab(ctx context.Context, tableID string) (entities.TabView, error)
	SetQuantity(ctx context.Context, tableID string, edit QuantityEdit) (entities.TabView, error)
	SetNote(ctx context.Context, tableID, menuItemID, note string) (entities.TabView, error)
}

// QuantityEdit is a requested total quantity for one menu item. Name and
// UnitPrice are only needed when the edit introduces an item the tab has never
// seen (no confirmed rows, no pending row).
type QuantityEdit struct {
	MenuItemID string
	Quantity   int
	Name       string
	UnitPrice  float64
}

type TabViewUseCase struct {
	selector ITabSelectorUseCase
	carts    interfaces.IPendingCartRepository
}

var _ ITabViewUseCase = (*TabViewUseCase)(nil)

func NewTabViewUseCase(selector ITabSelectorUseCase, carts interfaces.IPendingCartRepository) *TabViewUseCase {
	return &TabViewUseCase{selector: selector, carts: carts}
}

// LoadTab resolves the active order and merges its confirmed items with the
// pending cart into display rows and totals.
func (u *TabViewUseCase) LoadTab(ctx context.Context, tableID string) (entities.TabView, error) {
	order, orders, err := u.selector.ResolveActiveOrder(ctx, tableID)
	if err != nil {
		return entities.TabView{}, err
	}

	pending, err := u.carts.GetByOrderID(ctx, order.ID)
	if err != nil {
		return entities.TabView{}, err
	}

	return u.buildView(order, orders, pending), nil
}

// SetQuantity applies the quantity-edit contract: the requested total may
// never drop below the confirmed baseline; the stored pending item is the
// delta above it, deleted entirely when the delta reaches zero.
func (u *TabViewUseCase) SetQuantity(ctx context.Context, tableID string, edit QuantityEdit) (entities.TabView, error) {
	edit.MenuItemID = strings.TrimSpace(edit.MenuItemID)
	if edit.MenuItemID == "" {
		return entities.TabView{}, ErrInvalidMenuItemID
	}
	if edit.Quantity < 0 {
		return entities.TabView{}, ErrInvalidQuantity
	}

	order, orders, err := u.selector.ResolveActiveOrder(ctx, tableID)
	if err != nil {
		return entities.TabView{}, err
	}

	confirmedQty := order.ConfirmedQuantity(edit.MenuItemID)
	if edit.Quantity < confirmedQty {
		log.Printf("[tab][view] quantity edit rejected table_id=%s order_id=%s menu_item_id=%s requested=%d confirmed=%d",
			tableID, order.ID, edit.MenuItemID, edit.Quantity, confirmedQty)
		return entities.TabView{}, ErrQuantityBelowConfirmed
	}
	newPending := edit.Quantity - confirmedQty

	pending, err := u.carts.GetByOrderID(ctx, order.ID)
	if err != nil {
		return entities.TabView{}, err
	}

	idx := findPending(pending, edit.MenuItemID)
	switch {
	case newPending <= 0:
		if idx >= 0 {
			pending = append(pending[:idx], pending[idx+1:]...)
		}
	case idx >= 0:
		pending[idx].Quantity = newPending
	default:
		item, err := u.materializePending(order, edit)
		if err != nil {
			return entities.TabView{}, err
		}
		item.Quantity = newPending
		pending = append(pending, item)
	}

	if err := u.persistPending(ctx, tableID, order.ID, pending); err != nil {
		return entities.TabView{}, err
	}
	log.Printf("[tab][view] quantity set table_id=%s order_id=%s menu_item_id=%s total=%d pending=%d",
		tableID, order.ID, edit.MenuItemID, edit.Quantity, newPending)

	return u.buildView(order, orders, pending), nil
}

// SetNote attaches a note at the display-row level. An item with no pending
// row gets a zero-quantity one materialized purely to carry the note; clearing
// a note keeps an otherwise nonzero pending row, and deletes a zero-quantity
// carrier.
func (u *TabViewUseCase) SetNote(ctx context.Context, tableID, menuItemID, note string) (entities.TabView, error) {
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return entities.TabView{}, ErrInvalidMenuItemID
	}

	order, orders, err := u.selector.ResolveActiveOrder(ctx, tableID)
	if err != nil {
		return entities.TabView{}, err
	}

	pending, err := u.carts.GetByOrderID(ctx, order.ID)
	if err != nil {
		return entities.TabView{}, err
	}

	idx := findPending(pending, menuItemID)
	switch {
	case idx >= 0 && note == "" && pending[idx].Quantity <= 0:
		pending = append(pending[:idx], pending[idx+1:]...)
	case idx >= 0:
		pending[idx].Note = note
	case note == "":
		// Nothing pending and nothing to clear.
	default:
		item, err := u.materializePending(order, QuantityEdit{MenuItemID: menuItemID})
		if err != nil {
			return entities.TabView{}, err
		}
		item.Quantity = 0
		item.Note = note
		pending = append(pending, item)
	}

	if err := u.persistPending(ctx, tableID, order.ID, pending); err != nil {
		return entities.TabView{}, err
	}
	log.Printf("[tab][view] note set table_id=%s order_id=%s menu_item_id=%s note_len=%d",
		tableID, order.ID, menuItemID, len(note))

	return u.buildView(order, orders, pending), nil
}

// materializePending builds a new pending item for a menu item, taking name,
// price and note from the confirmed rows when the tab already knows the item.
func (u *TabViewUseCase) materializePending(order entities.Order, edit QuantityEdit) (entities.PendingLineItem, error) {
	for _, c := range order.Items {
		if c.MenuItemID == edit.MenuItemID {
			return entities.PendingLineItem{
				MenuItemID: c.MenuItemID,
				Name:       c.Name,
				UnitPrice:  c.UnitPrice,
				Note:       c.Note,
			}, nil
		}
	}
	if strings.TrimSpace(edit.Name) == "" || edit.UnitPrice <= 0 {
		return entities.PendingLineItem{}, ErrUnknownMenuItem
	}
	return entities.PendingLineItem{
		MenuItemID: edit.MenuItemID,
		Name:       strings.TrimSpace(edit.Name),
		UnitPrice:  edit.UnitPrice,
	}, nil
}

func (u *TabViewUseCase) persistPending(ctx context.Context, tableID, orderID string, items []entities.PendingLineItem) error {
	if len(items) == 0 {
		return u.carts.DeleteByOrderID(ctx, orderID)
	}
	return u.carts.Save(ctx, tableID, orderID, items)
}

func (u *TabViewUseCase) buildView(order entities.Order, orders []entities.Order, pending []entities.PendingLineItem) entities.TabView {
	view := Reconcile(order.Items, pending)
	view.OrderID = order.ID
	view.TableID = order.TableID
	view.Status = order.Status
	for _, o := range orders {
		if o.ID != order.ID {
			view.OtherOrderIDs = append(view.OtherOrderIDs, o.ID)
		}
	}
	return view
}

func findPending(items []entities.PendingLineItem, menuItemID string) int {
	for i, it := range items {
		if it.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
