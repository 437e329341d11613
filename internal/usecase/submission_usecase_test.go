package usecase

import (
	"context"
	"errors"
	"testing"

	"restaurant_tabs/internal/domain/entities"
	mock_interfaces "restaurant_tabs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type submitFixture struct {
	client   *mock_interfaces.MockIOrderServiceClient
	sessions *mock_interfaces.MockISessionStore
	carts    *mock_interfaces.MockIPendingCartRepository
	uc       *SubmissionUseCase
}

func newSubmitFixture(t *testing.T, orders []entities.Order) *submitFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &submitFixture{
		client:   mock_interfaces.NewMockIOrderServiceClient(ctrl),
		sessions: mock_interfaces.NewMockISessionStore(ctrl),
		carts:    mock_interfaces.NewMockIPendingCartRepository(ctrl),
	}
	f.client.EXPECT().ListActiveOrders(gomock.Any(), "t1").Return(orders, nil).AnyTimes()
	f.sessions.EXPECT().ConsumePendingOrderID(gomock.Any(), "t1").Return("", nil).AnyTimes()
	f.sessions.EXPECT().GetActiveOrderID(gomock.Any(), "t1").Return("", nil).AnyTimes()
	f.sessions.EXPECT().SetActiveOrderID(gomock.Any(), "t1", gomock.Any()).Return(nil).AnyTimes()

	selector := NewTabSelectorUseCase(f.client, f.sessions)
	f.uc = NewSubmissionUseCase(selector, f.client, f.carts)
	return f
}

func submitOrder() entities.Order {
	return entities.Order{
		ID: "ord-1", TableID: "t1", Status: entities.OrderStatusOpen,
		Items: []entities.ConfirmedLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 2},
		},
	}
}

func TestSubmissionUseCase_Submit(t *testing.T) {
	t.Run("merges pending with the confirmed baseline", func(t *testing.T) {
		order := submitOrder()
		f := newSubmitFixture(t, []entities.Order{order})

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 1, Note: "no onions"},
		}, nil)

		refreshed := order
		refreshed.Items = []entities.ConfirmedLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 3, Note: "no onions"},
		}
		var sent []entities.SubmissionItem
		f.client.EXPECT().SubmitItems(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.SubmissionItem) (entities.Order, error) {
				sent = items
				return refreshed, nil
			})
		f.carts.EXPECT().DeleteByOrderID(gomock.Any(), "ord-1").Return(nil)
		f.client.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(refreshed, nil)

		view, err := f.uc.Submit(context.Background(), "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sent) != 1 || sent[0].Quantity != 3 || sent[0].Note != "no onions" {
			t.Fatalf("expected merged tuple {itemX,3,no onions}, got %+v", sent)
		}
		if view.Items[0].ConfirmedQuantity != 3 || view.Items[0].PendingQuantity != 0 {
			t.Fatalf("expected pending reset against new baseline, got %+v", view.Items[0])
		}
	})

	t.Run("nothing to submit", func(t *testing.T) {
		f := newSubmitFixture(t, []entities.Order{submitOrder()})

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)

		_, err := f.uc.Submit(context.Background(), "t1")
		if !errors.Is(err, ErrNothingToSubmit) {
			t.Fatalf("expected ErrNothingToSubmit, got %v", err)
		}
	})

	t.Run("failure leaves pending items untouched", func(t *testing.T) {
		f := newSubmitFixture(t, []entities.Order{submitOrder()})

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 1},
		}, nil)
		f.client.EXPECT().SubmitItems(gomock.Any(), "ord-1", gomock.Any()).Return(entities.Order{}, errors.New("kitchen down"))

		// No DeleteByOrderID expectation: clearing on failure is a bug.
		_, err := f.uc.Submit(context.Background(), "t1")
		if err == nil || err.Error() != "kitchen down" {
			t.Fatalf("expected kitchen down, got %v", err)
		}
	})

	t.Run("falls back to the submit response when the refetch fails", func(t *testing.T) {
		order := submitOrder()
		f := newSubmitFixture(t, []entities.Order{order})

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 2},
		}, nil)
		refreshed := order
		refreshed.Items = []entities.ConfirmedLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 4},
		}
		f.client.EXPECT().SubmitItems(gomock.Any(), "ord-1", gomock.Any()).Return(refreshed, nil)
		f.carts.EXPECT().DeleteByOrderID(gomock.Any(), "ord-1").Return(nil)
		f.client.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("flaky"))

		view, err := f.uc.Submit(context.Background(), "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Items[0].ConfirmedQuantity != 4 {
			t.Fatalf("expected baseline from submit response, got %+v", view.Items[0])
		}
	})
}
