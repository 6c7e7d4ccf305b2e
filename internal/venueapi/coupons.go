package venueapi

import (
	"context"
	"net/http"
	"net/url"
)

type validateCouponRequest struct {
	Code    string `json:"code"`
	EventID string `json:"eventId"`
}

type CouponUpsert struct {
	Code         string  `json:"code"`
	Discount     float64 `json:"discount"`
	IsPercentage bool    `json:"isPercentage"`
	ExpiresAt    *string `json:"expiresAt,omitempty"`
	MaxUses      *int    `json:"maxUses,omitempty"`
	EventID      string  `json:"eventId"`
}

// ValidateCoupon checks a code against an event. Validation is server-side;
// a rejection comes back as an APIError whose Message (when present) is meant
// for the user verbatim.
func (c *Client) ValidateCoupon(ctx context.Context, code, eventID string) (Coupon, error) {
	var out Coupon
	in := validateCouponRequest{Code: code, EventID: eventID}
	if err := c.do(ctx, http.MethodPost, "/coupons/validate", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) ListCoupons(ctx context.Context, eventID string) ([]Coupon, error) {
	pathPart := "/coupons"
	if eventID != "" {
		pathPart += "?eventId=" + url.QueryEscape(eventID)
	}
	var out []Coupon
	if err := c.do(ctx, http.MethodGet, pathPart, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCoupon(ctx context.Context, in CouponUpsert) (Coupon, error) {
	var out Coupon
	if err := c.do(ctx, http.MethodPost, "/coupons", in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) UpdateCoupon(ctx context.Context, id string, in CouponUpsert) (Coupon, error) {
	var out Coupon
	if err := c.do(ctx, http.MethodPut, "/coupons/"+url.PathEscape(id), in, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/coupons/"+url.PathEscape(id), nil, nil)
}
