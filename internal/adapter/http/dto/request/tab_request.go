package request

import "strings"

// SelectOrderRequest points the table's active-order pointer at another tab
// (split billing).
type SelectOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// HandoffRequest arms the pending-order handoff before navigating to the menu
// page: the next cart transfer will target this order.
type HandoffRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// QuantityRequest carries the requested total quantity for one menu item.
// Quantity is a pointer so an explicit 0 ("drop my unsent items") survives
// binding. Name and UnitPrice are only required for items the tab has never
// seen.
type QuantityRequest struct {
	Quantity  *int    `json:"quantity" binding:"required"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// NoteRequest sets or clears (empty string) the note for one menu item.
type NoteRequest struct {
	Note string `json:"note"`
}

// PaymentLinkRequest carries the redirect contract for checkout.
type PaymentLinkRequest struct {
	ReturnURL string `json:"return_url" binding:"required"`
	CancelURL string `json:"cancel_url" binding:"required"`
}

func (r PaymentLinkRequest) Resolve() (returnURL, cancelURL string) {
	return strings.TrimSpace(r.ReturnURL), strings.TrimSpace(r.CancelURL)
}
