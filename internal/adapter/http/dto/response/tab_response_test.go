package response

import (
	"testing"

	"restaurant_tabs/internal/domain/entities"
)

func TestFromTabView(t *testing.T) {
	view := entities.TabView{
		OrderID: "ord-1",
		TableID: "t1",
		Status:  entities.OrderStatusOpen,
		Items: []entities.DisplayLineItem{
			{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, ConfirmedQuantity: 2, PendingQuantity: 1, Note: "no onions"},
		},
		ConfirmedTotal: 20,
		PendingTotal:   10,
		GrandTotal:     30,
		TotalItemCount: 3,
		OtherOrderIDs:  []string{"ord-2"},
	}

	resp := FromTabView(view)

	if resp.OrderID != "ord-1" || resp.Status != "open" {
		t.Fatalf("unexpected identity fields: %+v", resp)
	}
	if len(resp.Items) != 1 || resp.Items[0].TotalQuantity != 3 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if resp.GrandTotal != 30 || resp.TotalItemCount != 3 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if len(resp.OtherOrderIDs) != 1 || resp.OtherOrderIDs[0] != "ord-2" {
		t.Fatalf("unexpected siblings: %v", resp.OtherOrderIDs)
	}
}

func TestFromPaymentLink(t *testing.T) {
	resp := FromPaymentLink(entities.PaymentLink{OrderID: "ord-1", Amount: 24, CheckoutURL: "https://x"})
	if resp.OrderID != "ord-1" || resp.Amount != 24 || resp.CheckoutURL != "https://x" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
