package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptNumberFunc produces a candidate receipt number; it is called again after a collision.
type ReceiptNumberFunc func() (string, error)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// ListPaymentsByAccount retrieves every payment made against the account's charges.
	ListPaymentsByAccount(ctx context.Context, accountID string) ([]domain.Payment, error)

	// SumCompletedPayments returns the total of completed payments for the account.
	SumCompletedPayments(ctx context.Context, accountID string) (decimal.Decimal, error)

	// FindReceipt joins a payment with its charge and account.
	FindReceipt(ctx context.Context, paymentID string) (*domain.Receipt, error)
}

// PaymentWriter defines write operations for payment data.
// Both methods write payments and charge statuses in a single database transaction.
type PaymentWriter interface {
	// RecordPayment inserts a completed payment for the charge and marks the charge paid.
	RecordPayment(ctx context.Context, payment domain.Payment, nextReceipt ReceiptNumberFunc) (*domain.Payment, error)

	// SettleOutstandingCharges pays every unpaid charge of the account (optionally of one period)
	// for its full amount and marks each paid.
	SettleOutstandingCharges(ctx context.Context, accountID string, period string, paidAt time.Time, newID func() string, nextReceipt ReceiptNumberFunc) ([]domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
