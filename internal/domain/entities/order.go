package entities

import "time"

// OrderStatus represents the lifecycle of a table order ("tab").
//
// Domain notes:
//   - The external Order Service is the source of truth for order state.
//   - A tab stays active until it reaches a terminal status (paid/cancelled).

type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsActive is the single canonical "active" predicate. Both the primary
// active-orders fetch and the fail-soft list-all fallback must filter with it
// so the two paths can never disagree on what counts as an open tab.
func (s OrderStatus) IsActive() bool {
	switch s {
	case OrderStatusPaid, OrderStatusCancelled:
		return false
	}
	return s != ""
}

// Order is a server-owned tab scoped to a table.
//
// Confirmed items are the authoritative record of what the kitchen was told to
// prepare. The server does not deduplicate rows: the same menu item may appear
// in multiple ConfirmedLineItem rows and must be collapsed at display time.

type Order struct {
	ID        string              `json:"id"`
	TableID   string              `json:"table_id"`
	Status    OrderStatus         `json:"status"`
	Items     []ConfirmedLineItem `json:"items"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"created_at"`
}

// ConfirmedLineItem is a line item the kitchen has already acknowledged.
// Never mutated locally; only superseded by a newer fetch.
type ConfirmedLineItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note,omitempty"`
}

// ConfirmedQuantity sums every confirmed row for a menu item, collapsing the
// duplicate rows the server may return.
func (o Order) ConfirmedQuantity(menuItemID string) int {
	total := 0
	for _, it := range o.Items {
		if it.MenuItemID == menuItemID {
			total += it.Quantity
		}
	}
	return total
}

// ConfirmedTotal is the money total of the confirmed items only.
func (o Order) ConfirmedTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
