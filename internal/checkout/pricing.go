package checkout

import (
	"math"

	"boleteria/internal/venueapi"
)

// ServiceFeeRate is the venue's fixed service surcharge. The fee applies to
// the discounted amount, not the raw subtotal; that ordering is a contract
// with the storefront's displayed totals.
const ServiceFeeRate = 0.10

type Quote struct {
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
}

// NewQuote prices a purchase: subtotal = unit price x quantity, coupon
// discount (percentage of the subtotal or flat amount, never more than the
// subtotal), then the 10% service fee on what remains.
func NewQuote(unitPrice float64, quantity int, coupon *venueapi.Coupon) Quote {
	subtotal := round2(unitPrice * float64(quantity))

	var discount float64
	if coupon != nil {
		if coupon.IsPercentage {
			discount = subtotal * coupon.Discount / 100
		} else {
			discount = coupon.Discount
		}
		if discount > subtotal {
			discount = subtotal
		}
		discount = round2(discount)
	}

	discounted := subtotal - discount
	fee := round2(discounted * ServiceFeeRate)

	return Quote{
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		Subtotal:   subtotal,
		Discount:   discount,
		ServiceFee: fee,
		Total:      round2(discounted + fee),
	}
}

// PreferenceAmount is what the payment-preference request charges: subtotal
// plus service fee, without the coupon discount. The upstream preference
// endpoint has never taken the discount; the console mirrors that rather
// than inventing a different charge.
func PreferenceAmount(unitPrice float64, quantity int) float64 {
	subtotal := unitPrice * float64(quantity)
	return round2(subtotal + subtotal*ServiceFeeRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
