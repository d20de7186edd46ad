// Package pricing derives checkout numbers from cart lines. Everything here
// is a pure computation over decimals so the handlers never touch float
// arithmetic for money.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/MrBanoth/football-shop/models"
)

var (
	// Orders strictly above this subtotal ship for free.
	FreeShippingThreshold = decimal.NewFromInt(150)
	// Flat fee for everything else.
	FlatShippingFee = decimal.NewFromInt(10)
)

// Summary is the order breakdown shown on the cart and confirmation screens.
type Summary struct {
	Subtotal      float64 `json:"subtotal"`
	PromoCode     string  `json:"promo_code,omitempty"`
	PromoDiscount float64 `json:"promo_discount"`
	Shipping      float64 `json:"shipping"`
	Total         float64 `json:"total"`
}

// Subtotal sums price times quantity over all lines.
func Subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.ProductPrice)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Shipping applies the flat-fee rule. The threshold is strict: a subtotal of
// exactly 150.00 still pays the fee. An empty order ships nothing and owes
// nothing.
func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return FlatShippingFee
}

// Summarize computes the full breakdown for the given lines. An unknown promo
// code is ignored, not an error: the summary simply carries no discount. The
// shipping rule applies to the discounted subtotal.
func Summarize(items []models.CartItem, promoCode string) Summary {
	subtotal := Subtotal(items)

	discount := decimal.Zero
	applied := ""
	if pct, ok := PromoPercent(promoCode); ok && !subtotal.IsZero() {
		discount = subtotal.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
		applied = promoCode
	}

	discounted := subtotal.Sub(discount)
	shipping := Shipping(discounted)
	total := discounted.Add(shipping)

	sub, _ := subtotal.Round(2).Float64()
	disc, _ := discount.Float64()
	ship, _ := shipping.Float64()
	tot, _ := total.Round(2).Float64()

	return Summary{
		Subtotal:      sub,
		PromoCode:     applied,
		PromoDiscount: disc,
		Shipping:      ship,
		Total:         tot,
	}
}
