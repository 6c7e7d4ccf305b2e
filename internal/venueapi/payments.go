package venueapi

import (
	"context"
	"net/http"
)

type PreferenceRequest struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	BuyerName     string  `json:"buyerName"`
	BuyerLastName string  `json:"buyerLastName"`
	BuyerEmail    string  `json:"buyerEmail"`
	BuyerPhone    string  `json:"buyerPhone,omitempty"`
	BuyerDNI      string  `json:"buyerDni"`
}

type BrickPayer struct {
	Email          string              `json:"email"`
	Identification BrickIdentification `json:"identification"`
}

type BrickIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type BrickPaymentRequest struct {
	OrderID           string     `json:"orderId"`
	Token             string     `json:"token"`
	PaymentMethodID   string     `json:"paymentMethodId"`
	IssuerID          string     `json:"issuerId"`
	Installments      int        `json:"installments"`
	TransactionAmount float64    `json:"transactionAmount"`
	Description       string     `json:"description"`
	Payer             BrickPayer `json:"payer"`
}

// CreatePaymentPreference asks the venue API for a payment-provider
// preference. The returned handle is opaque; it only means something to the
// embeddable payment widget.
func (c *Client) CreatePaymentPreference(ctx context.Context, in PreferenceRequest) (PaymentPreference, error) {
	var out PaymentPreference
	if err := c.do(ctx, http.MethodPost, "/payments/preference", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) ProcessBrickPayment(ctx context.Context, in BrickPaymentRequest) (BrickPaymentResult, error) {
	var out BrickPaymentResult
	if err := c.do(ctx, http.MethodPost, "/payments/process-payment", in, &out); err != nil {
		return out, err
	}
	return out, nil
}
