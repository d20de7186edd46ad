package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrBanoth/football-shop/models"
)

func line(price float64, qty int) models.CartItem {
	return models.CartItem{ProductPrice: price, Quantity: qty}
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		line(89.99, 1),
		line(15.50, 2),
	}
	got := Subtotal(items)
	require.True(t, got.Equal(decimal.RequireFromString("120.99")), "got %s", got)
}

func TestSubtotalEmptyCart(t *testing.T) {
	require.True(t, Subtotal(nil).IsZero())
}

func TestShippingThresholdIsStrict(t *testing.T) {
	// Exactly 150.00 still pays the flat fee.
	fee := Shipping(decimal.RequireFromString("150.00"))
	require.True(t, fee.Equal(FlatShippingFee), "got %s", fee)

	free := Shipping(decimal.RequireFromString("150.01"))
	require.True(t, free.IsZero(), "got %s", free)
}

func TestShippingEmptyOrder(t *testing.T) {
	require.True(t, Shipping(decimal.Zero).IsZero())
}

func TestSummarizeExampleOrder(t *testing.T) {
	// 89.99 + 2 x 15.50 = 120.99, under the threshold, so shipping is 10.
	items := []models.CartItem{
		line(89.99, 1),
		line(15.50, 2),
	}
	sum := Summarize(items, "")
	assert.Equal(t, 120.99, sum.Subtotal)
	assert.Equal(t, 10.0, sum.Shipping)
	assert.Equal(t, 130.99, sum.Total)
	assert.Empty(t, sum.PromoCode)
}

func TestSummarizeFreeShipping(t *testing.T) {
	sum := Summarize([]models.CartItem{line(74.95, 3)}, "")
	assert.Equal(t, 224.85, sum.Subtotal)
	assert.Equal(t, 0.0, sum.Shipping)
	assert.Equal(t, 224.85, sum.Total)
}

func TestSummarizeEmptyCart(t *testing.T) {
	sum := Summarize(nil, "")
	assert.Equal(t, 0.0, sum.Subtotal)
	assert.Equal(t, 0.0, sum.Shipping)
	assert.Equal(t, 0.0, sum.Total)
}

func TestSummarizeWithPromo(t *testing.T) {
	// 100 - 10% = 90, still under threshold, shipping 10.
	sum := Summarize([]models.CartItem{line(50, 2)}, "welcome10")
	assert.Equal(t, "welcome10", sum.PromoCode)
	assert.Equal(t, 10.0, sum.PromoDiscount)
	assert.Equal(t, 10.0, sum.Shipping)
	assert.Equal(t, 100.0, sum.Total)
}

func TestSummarizeUnknownPromoIgnored(t *testing.T) {
	sum := Summarize([]models.CartItem{line(50, 2)}, "NOTACODE")
	assert.Empty(t, sum.PromoCode)
	assert.Equal(t, 0.0, sum.PromoDiscount)
	assert.Equal(t, 110.0, sum.Total)
}

func TestPromoPercent(t *testing.T) {
	pct, ok := PromoPercent("FOOTY20")
	require.True(t, ok)
	require.True(t, pct.Equal(decimal.NewFromInt(20)))

	_, ok = PromoPercent("")
	require.False(t, ok)

	_, ok = PromoPercent("EXPIRED99")
	require.False(t, ok)
}
