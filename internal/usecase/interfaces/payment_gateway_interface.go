package interfaces

import "context"

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The tabs service hands over (orderID, amount) plus the redirect contract and
// gets back a checkout URL; it holds no money-handling logic of its own.
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, orderID string, amount float64, returnURL, cancelURL string) (checkoutURL string, err error)
}
