package venueapi

import (
	"context"
	"fmt"
	"net/http"
)

type TicketQR struct {
	TicketID int64  `json:"ticketId"`
	QRCode   string `json:"qrCode"`
	URL      string `json:"url"`
}

type QRCheckResult struct {
	Valid   bool    `json:"valid"`
	Success bool    `json:"success"`
	Ticket  *Ticket `json:"ticket,omitempty"`
	Message string  `json:"message"`
}

type qrRequest struct {
	QRCode string `json:"qrCode"`
}

// GenerateTicketQR asks the venue API to issue the signed QR payload for a
// ticket. Rendering it as an image is the console's job.
func (c *Client) GenerateTicketQR(ctx context.Context, ticketID int64) (TicketQR, error) {
	var out TicketQR
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/generate-qr", ticketID), nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) ValidateQR(ctx context.Context, qrCode string) (QRCheckResult, error) {
	var out QRCheckResult
	if err := c.do(ctx, http.MethodPost, "/qr/validate", qrRequest{QRCode: qrCode}, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) CheckInTicket(ctx context.Context, qrCode string) (QRCheckResult, error) {
	var out QRCheckResult
	if err := c.do(ctx, http.MethodPost, "/qr/checkin", qrRequest{QRCode: qrCode}, &out); err != nil {
		return out, err
	}
	return out, nil
}
