package models

import (
	"github.com/shopspring/decimal"
)

// Charge is a row of the charges table.
type Charge struct {
	ChargeID    string          `db:"charge_id"`
	AccountID   string          `db:"account_id"`
	ServiceType string          `db:"service_type"`
	Tariff      decimal.Decimal `db:"tariff"`
	Volume      decimal.Decimal `db:"volume"`
	Amount      decimal.Decimal `db:"amount"`
	Period      string          `db:"period"`
	Status      string          `db:"status"`
	AuditFields
}
