package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ChargeStatus is the settlement state of a charge.
type ChargeStatus string

const (
	ChargeUnpaid  ChargeStatus = "unpaid"
	ChargePending ChargeStatus = "pending"
	ChargePaid    ChargeStatus = "paid"
)

// ParseChargeStatus converts a stored status string into a ChargeStatus.
func ParseChargeStatus(s string) (ChargeStatus, error) {
	switch ChargeStatus(s) {
	case ChargeUnpaid, ChargePending, ChargePaid:
		return ChargeStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown charge status %q", apperrors.ErrValidation, s)
}

// CanTransitionTo reports whether a charge in status s may move to next.
// Allowed: unpaid -> paid, pending -> paid, paid -> pending.
func (s ChargeStatus) CanTransitionTo(next ChargeStatus) bool {
	switch s {
	case ChargeUnpaid, ChargePending:
		return next == ChargePaid
	case ChargePaid:
		return next == ChargePending
	}
	return false
}

// Outstanding reports whether a charge in this status still awaits payment.
func (s ChargeStatus) Outstanding() bool {
	return s == ChargeUnpaid || s == ChargePending
}

// Charge is an amount billed to an account for one service over one billing period.
// Amount is fixed at creation and never recomputed.
type Charge struct {
	ChargeID    string          `json:"chargeID"`
	AccountID   string          `json:"accountID"`
	ServiceType string          `json:"serviceType"`
	Tariff      decimal.Decimal `json:"tariff"`
	Volume      decimal.Decimal `json:"volume"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period"` // e.g. "2023-01"
	Status      ChargeStatus    `json:"status"`
	AuditFields
}

// TransitionTo moves the charge to next or fails with a validation error.
func (c *Charge) TransitionTo(next ChargeStatus, now time.Time) error {
	if !c.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: charge %s cannot move from %s to %s", apperrors.ErrValidation, c.ChargeID, c.Status, next)
	}
	c.Status = next
	c.LastUpdatedAt = now
	return nil
}

// MoneyScale is the number of fractional digits stored for tariffs, volumes and amounts.
const MoneyScale = 4

type meteredChargeInput struct {
	ServiceType string          `validate:"required"`
	Tariff      decimal.Decimal `validate:"decimal_gte0,decimal_scale=4"`
	Volume      decimal.Decimal `validate:"decimal_gte0,decimal_scale=4"`
	Period      string          `validate:"required"`
}

type flatChargeInput struct {
	ServiceType string          `validate:"required"`
	Amount      decimal.Decimal `validate:"decimal_gt0,decimal_scale=4"`
	Period      string          `validate:"required"`
}

// NewMeteredCharge builds an unpaid charge whose amount is tariff * volume rounded half away
// from zero to MoneyScale digits, the precision the amount is stored with.
func NewMeteredCharge(chargeID, accountID, serviceType string, tariff, volume decimal.Decimal, period string, now time.Time) (Charge, error) {
	in := meteredChargeInput{
		ServiceType: strings.TrimSpace(serviceType),
		Tariff:      tariff,
		Volume:      volume,
		Period:      strings.TrimSpace(period),
	}
	if err := validateStruct(in); err != nil {
		return Charge{}, err
	}
	return Charge{
		ChargeID:    chargeID,
		AccountID:   accountID,
		ServiceType: in.ServiceType,
		Tariff:      tariff,
		Volume:      volume,
		Amount:      tariff.Mul(volume).Round(MoneyScale),
		Period:      in.Period,
		Status:      ChargeUnpaid,
		AuditFields: AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, nil
}

// NewFlatCharge builds an unpaid charge with a directly supplied amount.
func NewFlatCharge(chargeID, accountID, serviceType string, amount decimal.Decimal, period string, now time.Time) (Charge, error) {
	in := flatChargeInput{
		ServiceType: strings.TrimSpace(serviceType),
		Amount:      amount,
		Period:      strings.TrimSpace(period),
	}
	if err := validateStruct(in); err != nil {
		return Charge{}, err
	}
	return Charge{
		ChargeID:    chargeID,
		AccountID:   accountID,
		ServiceType: in.ServiceType,
		Tariff:      decimal.Zero,
		Volume:      decimal.Zero,
		Amount:      amount,
		Period:      in.Period,
		Status:      ChargeUnpaid,
		AuditFields: AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, nil
}
