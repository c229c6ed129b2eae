package accounting

import (
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumPayments totals the amounts of the given payments.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// SumOutstanding totals the amounts of charges that still await payment.
func SumOutstanding(charges []domain.Charge) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		if c.Status.Outstanding() {
			total = total.Add(c.Amount)
		}
	}
	return total
}
