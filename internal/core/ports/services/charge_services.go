package services

import (
	"context"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChargeReaderSvc defines read operations for charge data
type ChargeReaderSvc interface {
	// GetCharge retrieves a specific charge.
	GetCharge(ctx context.Context, chargeID string) (*domain.Charge, error)

	// ListCharges lists an account's charges, filtered by period when period is not empty.
	ListCharges(ctx context.Context, accountID string, period string) ([]domain.Charge, error)

	// GetTotalAmount sums every charge of the account regardless of status.
	GetTotalAmount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// ChargeWriterSvc defines write operations for charge data
type ChargeWriterSvc interface {
	// AddCharge posts a metered charge whose amount is tariff * volume.
	AddCharge(ctx context.Context, accountID, serviceType string, tariff, volume decimal.Decimal, period string) (*domain.Charge, error)

	// AddFlatCharge posts a charge with a fixed positive amount.
	AddFlatCharge(ctx context.Context, accountID, serviceType string, amount decimal.Decimal, period string) (*domain.Charge, error)

	// MarkPaid is an administrative correction moving a charge to paid.
	MarkPaid(ctx context.Context, chargeID string) (*domain.Charge, error)

	// MarkPending is an administrative reversal moving a paid charge back to pending.
	MarkPending(ctx context.Context, chargeID string) (*domain.Charge, error)

	// DeleteCharge removes a charge that has no payments.
	DeleteCharge(ctx context.Context, chargeID string) error
}

// ChargeSvcFacade combines all charge-related service interfaces
type ChargeSvcFacade interface {
	ChargeReaderSvc
	ChargeWriterSvc
}
