package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// promoCodes is the fixed table of accepted codes and their percent discount.
var promoCodes = map[string]int64{
	"WELCOME10": 10,
	"FOOTY20":   20,
}

// PromoPercent resolves a promo code to its percent discount. Codes are
// case-insensitive. An unknown or empty code returns ok=false; callers treat
// that as a plain conditional outcome, never an error.
func PromoPercent(code string) (decimal.Decimal, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return decimal.Zero, false
	}
	pct, ok := promoCodes[code]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(pct), true
}
