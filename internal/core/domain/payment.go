package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of a recorded payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// ParsePaymentStatus converts a stored status string into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, s)
}

// Payment is money applied against a single charge. Completed payments are never changed or removed.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	ChargeID      string          `json:"chargeID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	ReceiptNumber string          `json:"receiptNumber"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ValidatePaymentAmount rejects zero and negative payment amounts and amounts finer than MoneyScale.
func ValidatePaymentAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	if !fitsScale(amount, MoneyScale) {
		return fmt.Errorf("%w: payment amount must have at most %d decimal places, got %s", apperrors.ErrValidation, MoneyScale, amount.String())
	}
	return nil
}

// Receipt is a payment joined with the charge and account it settles.
type Receipt struct {
	PaymentID     string          `json:"paymentID"`
	ReceiptNumber string          `json:"receiptNumber"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Status        PaymentStatus   `json:"status"`
	ChargeID      string          `json:"chargeID"`
	ServiceType   string          `json:"serviceType"`
	Period        string          `json:"period"`
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	HolderName    string          `json:"holderName"`
	Address       string          `json:"address"`
}

// AccountBalance summarises what an account has been charged and what it has paid.
type AccountBalance struct {
	AccountID    string          `json:"accountID"`
	TotalCharged decimal.Decimal `json:"totalCharged"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// NewAccountBalance derives the outstanding amount from the two totals.
func NewAccountBalance(accountID string, charged, paid decimal.Decimal) AccountBalance {
	return AccountBalance{
		AccountID:    accountID,
		TotalCharged: charged,
		TotalPaid:    paid,
		Outstanding:  charged.Sub(paid),
	}
}
