package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	ChargeID      string          `db:"charge_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	ReceiptNumber string          `db:"receipt_number"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Receipt is the result row of the payment/charge/account join.
type Receipt struct {
	PaymentID     string          `db:"payment_id"`
	ReceiptNumber string          `db:"receipt_number"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	Status        string          `db:"status"`
	ChargeID      string          `db:"charge_id"`
	ServiceType   string          `db:"service_type"`
	Period        string          `db:"period"`
	AccountID     string          `db:"account_id"`
	AccountNumber string          `db:"number"`
	HolderName    string          `db:"name"`
	Address       string          `db:"address"`
}
