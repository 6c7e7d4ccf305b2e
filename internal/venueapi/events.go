package venueapi

import (
	"context"
	"net/http"
	"net/url"
)

type EventUpsert struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Date        string  `json:"date"`
	Capacity    *int    `json:"capacity,omitempty"`
	Promo       *bool   `json:"promo,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, in EventUpsert) (Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPost, "/event", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in EventUpsert) (Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id), in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil)
}
