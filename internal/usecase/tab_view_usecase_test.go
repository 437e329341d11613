package usecase

import (
	"context"
	"errors"
	"testing"

	"restaurant_tabs/internal/domain/entities"
	mock_interfaces "restaurant_tabs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type viewFixture struct {
	client   *mock_interfaces.MockIOrderServiceClient
	sessions *mock_interfaces.MockISessionStore
	carts    *mock_interfaces.MockIPendingCartRepository
	uc       *TabViewUseCase
}

// newViewFixture wires a real selector over mocked collaborators with relaxed
// session expectations, so each subtest only spells out what it asserts.
func newViewFixture(t *testing.T, orders []entities.Order) *viewFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &viewFixture{
		client:   mock_interfaces.NewMockIOrderServiceClient(ctrl),
		sessions: mock_interfaces.NewMockISessionStore(ctrl),
		carts:    mock_interfaces.NewMockIPendingCartRepository(ctrl),
	}
	f.client.EXPECT().ListActiveOrders(gomock.Any(), "t1").Return(orders, nil).AnyTimes()
	f.sessions.EXPECT().ConsumePendingOrderID(gomock.Any(), "t1").Return("", nil).AnyTimes()
	f.sessions.EXPECT().GetActiveOrderID(gomock.Any(), "t1").Return("", nil).AnyTimes()
	f.sessions.EXPECT().SetActiveOrderID(gomock.Any(), "t1", gomock.Any()).Return(nil).AnyTimes()

	selector := NewTabSelectorUseCase(f.client, f.sessions)
	f.uc = NewTabViewUseCase(selector, f.carts)
	return f
}

func twoOrderTable() []entities.Order {
	return []entities.Order{
		{
			ID: "ord-1", TableID: "t1", Status: entities.OrderStatusOpen,
			Items: []entities.ConfirmedLineItem{
				{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, Quantity: 2},
				{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, Quantity: 1},
				{MenuItemID: "itemB", Name: "Fries", UnitPrice: 4, Quantity: 1, Note: "extra salt"},
			},
		},
		{ID: "ord-2", TableID: "t1", Status: entities.OrderStatusOpen},
	}
}

func TestTabViewUseCase_LoadTab(t *testing.T) {
	f := newViewFixture(t, twoOrderTable())

	f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
		{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, Quantity: 2},
	}, nil)

	view, err := f.uc.LoadTab(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.OrderID != "ord-1" || view.TableID != "t1" {
		t.Fatalf("unexpected view identity: %+v", view)
	}
	if len(view.OtherOrderIDs) != 1 || view.OtherOrderIDs[0] != "ord-2" {
		t.Fatalf("expected sibling ord-2, got %v", view.OtherOrderIDs)
	}
	if view.Items[0].ConfirmedQuantity != 3 || view.Items[0].PendingQuantity != 2 {
		t.Fatalf("unexpected itemA row: %+v", view.Items[0])
	}
	if view.ConfirmedTotal != 34 || view.PendingTotal != 20 || view.GrandTotal != 54 {
		t.Fatalf("unexpected totals: %+v", view)
	}
}

func TestTabViewUseCase_SetQuantity(t *testing.T) {
	t.Run("rejected below confirmed baseline", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		_, err := f.uc.SetQuantity(context.Background(), "t1", QuantityEdit{MenuItemID: "itemA", Quantity: 1})
		if !errors.Is(err, ErrQuantityBelowConfirmed) {
			t.Fatalf("expected ErrQuantityBelowConfirmed, got %v", err)
		}
	})

	t.Run("writes pending delta above the baseline", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		var saved []entities.PendingLineItem
		f.carts.EXPECT().Save(gomock.Any(), "t1", "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, items []entities.PendingLineItem) error {
				saved = items
				return nil
			})

		view, err := f.uc.SetQuantity(context.Background(), "t1", QuantityEdit{MenuItemID: "itemA", Quantity: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 1 || saved[0].Quantity != 2 {
			t.Fatalf("expected pending delta 2, got %+v", saved)
		}
		if view.Items[0].PendingQuantity != 2 || view.Items[0].TotalQuantity() != 5 {
			t.Fatalf("unexpected view row: %+v", view.Items[0])
		}
	})

	t.Run("editing back to the baseline removes the pending item", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, Quantity: 2},
		}, nil)
		f.carts.EXPECT().DeleteByOrderID(gomock.Any(), "ord-1").Return(nil)

		view, err := f.uc.SetQuantity(context.Background(), "t1", QuantityEdit{MenuItemID: "itemA", Quantity: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Items[0].PendingQuantity != 0 {
			t.Fatalf("expected pending 0, got %+v", view.Items[0])
		}
	})

	t.Run("unknown item needs name and price", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, err := f.uc.SetQuantity(context.Background(), "t1", QuantityEdit{MenuItemID: "itemZ", Quantity: 1})
		if !errors.Is(err, ErrUnknownMenuItem) {
			t.Fatalf("expected ErrUnknownMenuItem, got %v", err)
		}
	})

	t.Run("new item creates a zero-confirmed pending row", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		f.carts.EXPECT().Save(gomock.Any(), "t1", "ord-1", gomock.Any()).Return(nil)

		view, err := f.uc.SetQuantity(context.Background(), "t1", QuantityEdit{MenuItemID: "itemZ", Quantity: 2, Name: "Cola", UnitPrice: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var row *entities.DisplayLineItem
		for i := range view.Items {
			if view.Items[i].MenuItemID == "itemZ" {
				row = &view.Items[i]
			}
		}
		if row == nil || row.ConfirmedQuantity != 0 || row.PendingQuantity != 2 {
			t.Fatalf("unexpected itemZ row: %+v", row)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())
		_, err := f.uc.SetQuantity(context.Background(), "t1", QuantityEdit{MenuItemID: "itemA", Quantity: -1})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestTabViewUseCase_SetNote(t *testing.T) {
	t.Run("materializes a zero-quantity carrier", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		var saved []entities.PendingLineItem
		f.carts.EXPECT().Save(gomock.Any(), "t1", "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, items []entities.PendingLineItem) error {
				saved = items
				return nil
			})

		view, err := f.uc.SetNote(context.Background(), "t1", "itemA", "no onions")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 1 || saved[0].Quantity != 0 || saved[0].Note != "no onions" {
			t.Fatalf("expected zero-quantity note carrier, got %+v", saved)
		}
		if view.Items[0].Note != "no onions" || view.Items[0].TotalQuantity() != 3 {
			t.Fatalf("unexpected view row: %+v", view.Items[0])
		}
	})

	t.Run("clearing a note deletes the zero-quantity carrier", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, Quantity: 0, Note: "no onions"},
		}, nil)
		f.carts.EXPECT().DeleteByOrderID(gomock.Any(), "ord-1").Return(nil)

		if _, err := f.uc.SetNote(context.Background(), "t1", "itemA", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("clearing a note keeps a nonzero pending item", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemA", Name: "Burger", UnitPrice: 10, Quantity: 2, Note: "no onions"},
		}, nil)
		var saved []entities.PendingLineItem
		f.carts.EXPECT().Save(gomock.Any(), "t1", "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, items []entities.PendingLineItem) error {
				saved = items
				return nil
			})

		if _, err := f.uc.SetNote(context.Background(), "t1", "itemA", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 1 || saved[0].Quantity != 2 || saved[0].Note != "" {
			t.Fatalf("expected cleared note on surviving item, got %+v", saved)
		}
	})

	t.Run("note for an item the tab has never seen", func(t *testing.T) {
		f := newViewFixture(t, twoOrderTable())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, err := f.uc.SetNote(context.Background(), "t1", "itemZ", "well done")
		if !errors.Is(err, ErrUnknownMenuItem) {
			t.Fatalf("expected ErrUnknownMenuItem, got %v", err)
		}
	})
}
