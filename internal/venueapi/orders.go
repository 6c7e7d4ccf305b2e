package venueapi

import (
	"context"
	"net/http"
	"net/url"
)

type CreateOrderRequest struct {
	UserID    *string `json:"userId"`
	TicketIDs []int64 `json:"ticketIds"`
}

func (c *Client) CreateOrder(ctx context.Context, in CreateOrderRequest) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/order", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

// GetOrder reloads an order. The payment status poller only inspects Status.
func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodGet, "/order/"+url.PathEscape(id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/order", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
