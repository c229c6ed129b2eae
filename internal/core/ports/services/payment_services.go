package services

import (
	"context"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// ListPayments lists the payments made against an account's charges.
	ListPayments(ctx context.Context, accountID string) ([]domain.Payment, error)

	// GetTotalPayments sums the account's completed payments.
	GetTotalPayments(ctx context.Context, accountID string) (decimal.Decimal, error)

	// GetPaymentReceipt builds the receipt view of a payment.
	GetPaymentReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error)

	// GetAccountBalance reports charged, paid and outstanding totals for an account.
	GetAccountBalance(ctx context.Context, accountID string) (*domain.AccountBalance, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// MakePayment records a payment against a charge and marks the charge paid, atomically.
	MakePayment(ctx context.Context, chargeID string, amount decimal.Decimal) (*domain.Payment, error)

	// PayAllCharges settles every unpaid charge of the account, optionally for one period, atomically.
	PayAllCharges(ctx context.Context, accountID string, period string) ([]domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
