package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"restaurant_tabs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates Checkout Pro payment links for fully submitted
// tabs. The order id rides along as the preference external reference so
// provider events can be reconciled back to the tab.

type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, orderID string, amount float64, returnURL, cancelURL string) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://sandbox.mercadopago.example/checkout/%s", uuid.NewString())
		log.Printf("[payment][gateway] mock link created order_id=%s amount=%.2f url=%s", orderID, amount, url)
		return url, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create link start order_id=%s amount=%.2f", orderID, amount)

	req := preference.Request{
		ExternalReference: orderID,
		AutoReturn:        "approved",
		BackURLs: &preference.BackURLsRequest{
			Success: returnURL,
			Pending: returnURL,
			Failure: cancelURL,
		},
		Items: []preference.ItemRequest{
			{
				ID:        orderID,
				Title:     fmt.Sprintf("Table order %s", orderID),
				Quantity:  1,
				UnitPrice: amount,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", orderID, err)
		return "", err
	}

	url := resp.InitPoint
	if url == "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] link created order_id=%s preference_id=%s", orderID, resp.ID)
	return url, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
