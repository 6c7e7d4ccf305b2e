package venueapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type CreateTicketRequest struct {
	EventID       string  `json:"eventId"`
	BuyerName     string  `json:"buyerName"`
	BuyerLastName string  `json:"buyerLastName"`
	BuyerEmail    string  `json:"buyerEmail"`
	BuyerPhone    *string `json:"buyerPhone"`
	BuyerDNI      string  `json:"buyerDni"`
}

func (c *Client) CreateTicket(ctx context.Context, in CreateTicketRequest) (Ticket, error) {
	var out Ticket
	if err := c.do(ctx, http.MethodPost, "/ticket", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) GetTicket(ctx context.Context, id int64) (Ticket, error) {
	var out Ticket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ticket/%d", id), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) ListTickets(ctx context.Context, eventID string) ([]Ticket, error) {
	pathPart := "/ticket"
	if eventID != "" {
		pathPart += "?eventId=" + url.QueryEscape(eventID)
	}
	var out []Ticket
	if err := c.do(ctx, http.MethodGet, pathPart, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
