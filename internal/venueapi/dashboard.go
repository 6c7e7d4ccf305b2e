package venueapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

type TopEvent struct {
	EventID     string  `json:"eventId"`
	Title       string  `json:"title"`
	TicketsSold int     `json:"ticketsSold"`
	Revenue     float64 `json:"revenue"`
}

type SalesPoint struct {
	Label   string  `json:"label"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
}

func (c *Client) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

// GetReportsData returns the aggregated report payload for a period as the
// venue API serializes it; the console relays it without reshaping.
func (c *Client) GetReportsData(ctx context.Context, period string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/reports/data?period="+url.QueryEscape(period), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTopEvents(ctx context.Context, period string) ([]TopEvent, error) {
	var out []TopEvent
	if err := c.do(ctx, http.MethodGet, "/reports/top-events?period="+url.QueryEscape(period), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSalesChart(ctx context.Context, period string) ([]SalesPoint, error) {
	var out []SalesPoint
	if err := c.do(ctx, http.MethodGet, "/reports/sales-chart?period="+url.QueryEscape(period), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
