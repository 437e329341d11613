package response

import "restaurant_tabs/internal/domain/entities"

type TabItemResponse struct {
	MenuItemID        string  `json:"menu_item_id"`
	Name              string  `json:"name"`
	UnitPrice         float64 `json:"unit_price"`
	ConfirmedQuantity int     `json:"confirmed_quantity"`
	PendingQuantity   int     `json:"pending_quantity"`
	TotalQuantity     int     `json:"total_quantity"`
	Note              string  `json:"note,omitempty"`
}

type TabResponse struct {
	OrderID        string            `json:"order_id"`
	TableID        string            `json:"table_id"`
	Status         string            `json:"status"`
	Items          []TabItemResponse `json:"items"`
	ConfirmedTotal float64           `json:"confirmed_total"`
	PendingTotal   float64           `json:"pending_total"`
	GrandTotal     float64           `json:"grand_total"`
	TotalItemCount int               `json:"total_item_count"`
	OtherOrderIDs  []string          `json:"other_order_ids,omitempty"`
}

func FromTabView(v entities.TabView) TabResponse {
	items := make([]TabItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, TabItemResponse{
			MenuItemID:        it.MenuItemID,
			Name:              it.Name,
			UnitPrice:         it.UnitPrice,
			ConfirmedQuantity: it.ConfirmedQuantity,
			PendingQuantity:   it.PendingQuantity,
			TotalQuantity:     it.TotalQuantity(),
			Note:              it.Note,
		})
	}
	return TabResponse{
		OrderID:        v.OrderID,
		TableID:        v.TableID,
		Status:         string(v.Status),
		Items:          items,
		ConfirmedTotal: v.ConfirmedTotal,
		PendingTotal:   v.PendingTotal,
		GrandTotal:     v.GrandTotal,
		TotalItemCount: v.TotalItemCount,
		OtherOrderIDs:  v.OtherOrderIDs,
	}
}

// TransferResponse reports how many menu-cart entries a transfer folded in.
type TransferResponse struct {
	TransferredItems int `json:"transferred_items"`
}

type PaymentLinkResponse struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	CheckoutURL string  `json:"checkout_url"`
}

func FromPaymentLink(l entities.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		OrderID:     l.OrderID,
		Amount:      l.Amount,
		CheckoutURL: l.CheckoutURL,
	}
}
