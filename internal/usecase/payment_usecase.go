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
	ErrPendingItemsExist = errors.New("unsubmitted items on the tab")
	ErrNothingToPay      = errors.New("tab has no confirmed items to pay for")
	ErrInvalidReturnURL  = errors.New("invalid return url")
)

// IPaymentUseCase is the payment gate: it only ever requests payment against
// quantities the kitchen has acknowledged.

type IPaymentUseCase interface {
	RequestPayment(ctx context.Context, tableID, returnURL, cancelURL string) (entities.PaymentLink, error)
}

type PaymentUseCase struct {
	selector ITabSelectorUseCase
	carts    interfaces.IPendingCartRepository
	gateway  interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(selector ITabSelectorUseCase, carts interfaces.IPendingCartRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{selector: selector, carts: carts, gateway: gateway}
}

// RequestPayment refuses while the active order still has pending items, then
// delegates (orderID, confirmedTotal) to the payment gateway.
func (u *PaymentUseCase) RequestPayment(ctx context.Context, tableID, returnURL, cancelURL string) (entities.PaymentLink, error) {
	returnURL = strings.TrimSpace(returnURL)
	cancelURL = strings.TrimSpace(cancelURL)
	if returnURL == "" || cancelURL == "" {
		return entities.PaymentLink{}, ErrInvalidReturnURL
	}

	order, _, err := u.selector.ResolveActiveOrder(ctx, tableID)
	if err != nil {
		return entities.PaymentLink{}, err
	}

	pending, err := u.carts.GetByOrderID(ctx, order.ID)
	if err != nil {
		return entities.PaymentLink{}, err
	}
	if len(pending) > 0 {
		log.Printf("[tab][payment] refused, pending items table_id=%s order_id=%s pending=%d", tableID, order.ID, len(pending))
		return entities.PaymentLink{}, ErrPendingItemsExist
	}

	// Split billing: other tabs on the table may still hold pending carts.
	// That never blocks paying this one, but it is worth a trace.
	if ids, err := u.carts.ListOrderIDsByTableID(ctx, tableID); err == nil {
		for _, id := range ids {
			if id != order.ID {
				log.Printf("[tab][payment] sibling order still has pending items table_id=%s order_id=%s", tableID, id)
			}
		}
	}

	amount := order.ConfirmedTotal()
	if amount <= 0 {
		return entities.PaymentLink{}, ErrNothingToPay
	}

	checkoutURL, err := u.gateway.CreatePaymentLink(ctx, order.ID, amount, returnURL, cancelURL)
	if err != nil {
		log.Printf("[tab][payment] gateway failed table_id=%s order_id=%s err=%v", tableID, order.ID, err)
		return entities.PaymentLink{}, err
	}
	log.Printf("[tab][payment] link created table_id=%s order_id=%s amount=%.2f", tableID, order.ID, amount)

	return entities.PaymentLink{OrderID: order.ID, Amount: amount, CheckoutURL: checkoutURL}, nil
}
