package usecase

import (
	"context"
	"errors"
	"testing"

	"restaurant_tabs/internal/domain/entities"
	mock_interfaces "restaurant_tabs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	client   *mock_interfaces.MockIOrderServiceClient
	sessions *mock_interfaces.MockISessionStore
	carts    *mock_interfaces.MockIPendingCartRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	uc       *PaymentUseCase
}

func newPaymentFixture(t *testing.T, orders []entities.Order) *paymentFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &paymentFixture{
		client:   mock_interfaces.NewMockIOrderServiceClient(ctrl),
		sessions: mock_interfaces.NewMockISessionStore(ctrl),
		carts:    mock_interfaces.NewMockIPendingCartRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.client.EXPECT().ListActiveOrders(gomock.Any(), "t1").Return(orders, nil).AnyTimes()
	f.sessions.EXPECT().ConsumePendingOrderID(gomock.Any(), "t1").Return("", nil).AnyTimes()
	f.sessions.EXPECT().GetActiveOrderID(gomock.Any(), "t1").Return("", nil).AnyTimes()
	f.sessions.EXPECT().SetActiveOrderID(gomock.Any(), "t1", gomock.Any()).Return(nil).AnyTimes()

	selector := NewTabSelectorUseCase(f.client, f.sessions)
	f.uc = NewPaymentUseCase(selector, f.carts, f.gateway)
	return f
}

func paidTableOrders() []entities.Order {
	return []entities.Order{{
		ID: "ord-1", TableID: "t1", Status: entities.OrderStatusOpen,
		Items: []entities.ConfirmedLineItem{
			{MenuItemID: "itemX", Name: "Burger", UnitPrice: 10, Quantity: 2},
			{MenuItemID: "itemY", Name: "Fries", UnitPrice: 4, Quantity: 1},
		},
	}}
}

func TestPaymentUseCase_RequestPayment(t *testing.T) {
	t.Run("refused while pending items exist", func(t *testing.T) {
		f := newPaymentFixture(t, paidTableOrders())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return([]entities.PendingLineItem{
			{MenuItemID: "itemX", Quantity: 1},
		}, nil)

		_, err := f.uc.RequestPayment(context.Background(), "t1", "https://r", "https://c")
		if !errors.Is(err, ErrPendingItemsExist) {
			t.Fatalf("expected ErrPendingItemsExist, got %v", err)
		}
	})

	t.Run("delegates the confirmed total to the gateway", func(t *testing.T) {
		f := newPaymentFixture(t, paidTableOrders())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		f.carts.EXPECT().ListOrderIDsByTableID(gomock.Any(), "t1").Return([]string{"ord-9"}, nil)
		f.gateway.EXPECT().CreatePaymentLink(gomock.Any(), "ord-1", 24.0, "https://r", "https://c").
			Return("https://mp.example/checkout/abc", nil)

		link, err := f.uc.RequestPayment(context.Background(), "t1", "https://r", "https://c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.OrderID != "ord-1" || link.Amount != 24 || link.CheckoutURL != "https://mp.example/checkout/abc" {
			t.Fatalf("unexpected link: %+v", link)
		}
	})

	t.Run("empty tab has nothing to pay", func(t *testing.T) {
		f := newPaymentFixture(t, []entities.Order{{ID: "ord-1", TableID: "t1", Status: entities.OrderStatusOpen}})

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		f.carts.EXPECT().ListOrderIDsByTableID(gomock.Any(), "t1").Return(nil, nil)

		_, err := f.uc.RequestPayment(context.Background(), "t1", "https://r", "https://c")
		if !errors.Is(err, ErrNothingToPay) {
			t.Fatalf("expected ErrNothingToPay, got %v", err)
		}
	})

	t.Run("missing redirect urls", func(t *testing.T) {
		f := newPaymentFixture(t, paidTableOrders())
		_, err := f.uc.RequestPayment(context.Background(), "t1", "", "https://c")
		if !errors.Is(err, ErrInvalidReturnURL) {
			t.Fatalf("expected ErrInvalidReturnURL, got %v", err)
		}
	})

	t.Run("gateway failure is surfaced", func(t *testing.T) {
		f := newPaymentFixture(t, paidTableOrders())

		f.carts.EXPECT().GetByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		f.carts.EXPECT().ListOrderIDsByTableID(gomock.Any(), "t1").Return(nil, nil)
		f.gateway.EXPECT().CreatePaymentLink(gomock.Any(), "ord-1", 24.0, "https://r", "https://c").
			Return("", errors.New("provider down"))

		_, err := f.uc.RequestPayment(context.Background(), "t1", "https://r", "https://c")
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down, got %v", err)
		}
	})
}
