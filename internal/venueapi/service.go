package venueapi

import (
	"context"
	"net/http"
	"net/url"
)

// Service order lifecycle as the venue API reports it. Orders move from
// PENDING through preparation to DELIVERED; CANCELLED is terminal.
const (
	ServiceOrderPending       = "PENDING"
	ServiceOrderInPreparation = "IN_PREPARATION"
	ServiceOrderReady         = "READY"
	ServiceOrderDelivered     = "DELIVERED"
	ServiceOrderCancelled     = "CANCELLED"
)

const (
	ServiceOrderFood  = "FOOD"
	ServiceOrderDrink = "DRINK"
)

type ServiceOrder struct {
	ID      string        `json:"id"`
	TableID string        `json:"tableId"`
	Table   *ServiceTable `json:"table,omitempty"`
	Type    string        `json:"type"`
	Items   string        `json:"items"`
	Total   float64       `json:"total"`
	Status  string        `json:"status"`
	Notes   string        `json:"notes,omitempty"`
}

type ServiceTable struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
}

type Table struct {
	ID        string  `json:"id"`
	Number    int     `json:"number"`
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
	IsActive  bool    `json:"isActive"`
}

type ServiceOrderCreate struct {
	TableID string  `json:"tableId"`
	Type    string  `json:"type"`
	Items   string  `json:"items"`
	Total   float64 `json:"total"`
	Notes   string  `json:"notes,omitempty"`
}

type serviceOrderStatusRequest struct {
	Status string `json:"status"`
}

type TableUpsert struct {
	Number    int     `json:"number"`
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// ListServiceOrders filters by type and status; empty strings mean no filter.
func (c *Client) ListServiceOrders(ctx context.Context, orderType, status string) ([]ServiceOrder, error) {
	q := url.Values{}
	if orderType != "" {
		q.Set("type", orderType)
	}
	if status != "" {
		q.Set("status", status)
	}
	pathPart := "/service-orders"
	if len(q) > 0 {
		pathPart += "?" + q.Encode()
	}
	var out []ServiceOrder
	if err := c.do(ctx, http.MethodGet, pathPart, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateServiceOrder(ctx context.Context, in ServiceOrderCreate) (ServiceOrder, error) {
	var out ServiceOrder
	if err := c.do(ctx, http.MethodPost, "/service-orders", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) UpdateServiceOrderStatus(ctx context.Context, id, status string) (ServiceOrder, error) {
	var out ServiceOrder
	in := serviceOrderStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, "/service-orders/"+url.PathEscape(id)+"/status", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

// ListKitchenOrders returns the kitchen queue: food orders that are not yet
// delivered or cancelled. The filtering happens upstream.
func (c *Client) ListKitchenOrders(ctx context.Context) ([]ServiceOrder, error) {
	var out []ServiceOrder
	if err := c.do(ctx, http.MethodGet, "/service-orders/kitchen", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTables(ctx context.Context) ([]Table, error) {
	var out []Table
	if err := c.do(ctx, http.MethodGet, "/tables", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTable(ctx context.Context, in TableUpsert) (Table, error) {
	var out Table
	if err := c.do(ctx, http.MethodPost, "/tables", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) UpdateTable(ctx context.Context, id string, in TableUpsert) (Table, error) {
	var out Table
	if err := c.do(ctx, http.MethodPut, "/tables/"+url.PathEscape(id), in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) DeleteTable(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tables/"+url.PathEscape(id), nil, nil)
}
