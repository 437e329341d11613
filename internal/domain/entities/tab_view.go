package entities

// DisplayLineItem is the reconciled per-menu-item row shown to the diner:
// every confirmed row for the item collapsed into ConfirmedQuantity, with the
// matching pending delta overlaid. Derived state, never persisted.
type DisplayLineItem struct {
	MenuItemID        string  `json:"menu_item_id"`
	Name              string  `json:"name"`
	UnitPrice         float64 `json:"unit_price"`
	ConfirmedQuantity int     `json:"confirmed_quantity"`
	PendingQuantity   int     `json:"pending_quantity"`
	Note              string  `json:"note,omitempty"`
}

func (d DisplayLineItem) TotalQuantity() int {
	return d.ConfirmedQuantity + d.PendingQuantity
}

// TabView is the full reconciled state of the active tab: display rows plus
// totals that are simultaneously correct for confirmed and pending items.
type TabView struct {
	OrderID        string            `json:"order_id"`
	TableID        string            `json:"table_id"`
	Status         OrderStatus       `json:"status"`
	Items          []DisplayLineItem `json:"items"`
	ConfirmedTotal float64           `json:"confirmed_total"`
	PendingTotal   float64           `json:"pending_total"`
	GrandTotal     float64           `json:"grand_total"`
	TotalItemCount int               `json:"total_item_count"`
	OtherOrderIDs  []string          `json:"other_order_ids,omitempty"`
}

// PaymentLink is the checkout redirect produced by the payment gateway for a
// fully submitted tab.
type PaymentLink struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	CheckoutURL string  `json:"checkout_url"`
}
