package orderservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"restaurant_tabs/internal/domain/entities"
	"restaurant_tabs/internal/usecase/interfaces"
)

var ErrMissingOrderServiceURL = errors.New("missing ORDER_SERVICE_URL")

// Client talks to the external Order Service, the authoritative owner of
// confirmed order state.

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IOrderServiceClient = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[orders][client] missing ORDER_SERVICE_URL")
		return nil, ErrMissingOrderServiceURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type orderPayload struct {
	ID        string    `json:"id"`
	TableID   string    `json:"table_id"`
	Status    string    `json:"status"`
	Items     []itemRow `json:"items"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

type itemRow struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note,omitempty"`
}

// ListActiveOrders fetches the table's non-terminal orders. When the
// active-orders endpoint fails it falls back to listing every order for the
// table and filtering client-side with the same IsActive predicate the server
// applies, trading efficiency for availability.
func (c *Client) ListActiveOrders(ctx context.Context, tableID string) ([]entities.Order, error) {
	var payloads []orderPayload
	err := c.getJSON(ctx, fmt.Sprintf("/tables/%s/orders?active=true", tableID), &payloads)
	if err != nil {
		log.Printf("[orders][client] active orders fetch failed, falling back table_id=%s err=%v", tableID, err)
		if err := c.getJSON(ctx, fmt.Sprintf("/tables/%s/orders", tableID), &payloads); err != nil {
			return nil, err
		}
	}

	orders := make([]entities.Order, 0, len(payloads))
	for _, p := range payloads {
		o := p.toOrder()
		if o.Status.IsActive() {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, tableID string) (entities.Order, error) {
	var payload orderPayload
	body := map[string]any{"table_id": tableID, "items": []any{}}
	if err := c.postJSON(ctx, "/orders", body, &payload); err != nil {
		return entities.Order{}, err
	}
	log.Printf("[orders][client] order created table_id=%s order_id=%s", tableID, payload.ID)
	return payload.toOrder(), nil
}

func (c *Client) SubmitItems(ctx context.Context, orderID string, items []entities.SubmissionItem) (entities.Order, error) {
	var payload orderPayload
	body := map[string]any{"items": items}
	if err := c.postJSON(ctx, fmt.Sprintf("/orders/%s/items", orderID), body, &payload); err != nil {
		return entities.Order{}, err
	}
	return payload.toOrder(), nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var payload orderPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%s", orderID), &payload); err != nil {
		return entities.Order{}, err
	}
	return payload.toOrder(), nil
}

func (p orderPayload) toOrder() entities.Order {
	items := make([]entities.ConfirmedLineItem, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, entities.ConfirmedLineItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			Note:       it.Note,
		})
	}
	return entities.Order{
		ID:        p.ID,
		TableID:   p.TableID,
		Status:    entities.OrderStatus(p.Status),
		Items:     items,
		Total:     p.Total,
		CreatedAt: p.CreatedAt,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order service %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
