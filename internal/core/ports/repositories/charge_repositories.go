package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChargeReader defines read operations for charge data
type ChargeReader interface {
	// FindChargeByID retrieves a specific charge by its unique identifier.
	FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error)

	// ListCharges retrieves the charges of an account. An empty period matches every period.
	ListCharges(ctx context.Context, accountID string, period string) ([]domain.Charge, error)

	// SumChargeAmounts returns the total amount charged to an account regardless of status.
	SumChargeAmounts(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// ChargeWriter defines write operations for charge data
type ChargeWriter interface {
	// SaveCharge persists a new charge.
	SaveCharge(ctx context.Context, charge domain.Charge) error

	// TransitionChargeStatus locks the charge and moves it to next if the state machine allows it.
	TransitionChargeStatus(ctx context.Context, chargeID string, next domain.ChargeStatus, now time.Time) (*domain.Charge, error)

	// DeleteCharge removes a charge that no payment references.
	DeleteCharge(ctx context.Context, chargeID string) error
}

// ChargeRepositoryFacade combines all charge-related repository interfaces
type ChargeRepositoryFacade interface {
	ChargeReader
	ChargeWriter
}
