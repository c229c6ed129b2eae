package utils

import (
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the minimum number of fractional digits shown for billed amounts.
const MoneyPrecision = 2

// FormatMoney renders an amount with at least MoneyPrecision and at most domain.MoneyScale
// fractional digits, so stored sub-cent values are shown rather than rounded away.
// e.g. 50 -> "50.00", 12.345 -> "12.345", 8.51824 -> "8.5182".
func FormatMoney(amount decimal.Decimal) string {
	stored := amount.Round(domain.MoneyScale)
	for places := int32(MoneyPrecision); places < domain.MoneyScale; places++ {
		if stored.Equal(stored.Truncate(places)) {
			return stored.StringFixed(places)
		}
	}
	return stored.StringFixed(domain.MoneyScale)
}
