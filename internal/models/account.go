package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Number    string          `db:"number"`
	Name      string          `db:"name"`
	Address   string          `db:"address"`
	Area      decimal.Decimal `db:"area"`
	Residents int             `db:"residents"`
	Company   string          `db:"company"`
	Status    string          `db:"status"`
	AuditFields
}
