package entities

// PendingLineItem is a locally queued quantity/note not yet sent to the
// kitchen, scoped to one (table, order) pair. Its quantity is the delta above
// what is already confirmed for that menu item, never a replacement for it.
//
// A PendingLineItem with Quantity 0 is legal: it carries a note edit for an
// item whose quantity is fully confirmed (see tab view usecase).
type PendingLineItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note,omitempty"`
}

// MenuCartItem is one entry of the external menu-browsing cart. The tabs
// service only drains that cart; it never writes into it.
type MenuCartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note,omitempty"`
}

// SubmissionItem is one merged (menu item, total quantity, note) tuple sent to
// the Order Service in a submission batch. Quantity is the full amount the
// kitchen should now have for the item, confirmed baseline included, so the
// server never ends up with duplicate rows for the same item.
type SubmissionItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}
