package pgsql

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, time.February, 1, 10, 30, 0, 0, time.UTC)

var chargeCols = []string{
	"charge_id", "account_id", "service_type", "tariff", "volume", "amount",
	"period", "status", "created_at", "last_updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// chargeRows builds result rows for queries selecting chargeColumns.
// Each entry is charge id, period, amount, status.
func chargeRows(mock pgxmock.PgxPoolIface, accountID string, charges ...[4]string) *pgxmock.Rows {
	rows := mock.NewRows(chargeCols)
	for _, c := range charges {
		rows.AddRow(
			c[0], accountID, "water",
			decimal.Zero, decimal.Zero, decimal.RequireFromString(c[2]),
			c[1], c[3], fixedNow, fixedNow,
		)
	}
	return rows
}

// sequence returns a receipt generator that hands out the given numbers in order.
func sequence(numbers ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		n := numbers[i%len(numbers)]
		i++
		return n, nil
	}
}
