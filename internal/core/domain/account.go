package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/utility_billing_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of a billing account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// ParseAccountStatus converts a stored status string into an AccountStatus.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(s) {
	case AccountActive, AccountInactive:
		return AccountStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown account status %q", apperrors.ErrValidation, s)
}

// Account is a customer's utility account: the premises being billed and its holder.
type Account struct {
	AccountID   string          `json:"accountID"`
	UserID      string          `json:"userID"` // owning user
	Number      string          `json:"number"` // 10 digits, unique, immutable
	Name        string          `json:"name"`   // holder name
	Address     string          `json:"address"`
	Area        decimal.Decimal `json:"area"` // floor area, > 0
	Residents   int             `json:"residents"`
	Company     string          `json:"company"` // managing company
	Status      AccountStatus   `json:"status"`
	AuditFields
}

// IsActive reports whether the account may receive new charges.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}

// AccountDetails are the owner-editable fields of an account, validated on create and update.
type AccountDetails struct {
	Number    string          `validate:"required,account_number"`
	Name      string          `validate:"required"`
	Address   string          `validate:"required"`
	Area      decimal.Decimal `validate:"decimal_gt0,decimal_scale=2"`
	Residents int             `validate:"gte=0"`
	Company   string          `validate:"required"`
}

// Normalize trims surrounding whitespace from the text fields.
func (d AccountDetails) Normalize() AccountDetails {
	d.Number = strings.TrimSpace(d.Number)
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Company = strings.TrimSpace(d.Company)
	return d
}

// Validate checks the details and returns an error wrapping apperrors.ErrValidation.
func (d AccountDetails) Validate() error {
	return validateStruct(d)
}

// Apply copies the details onto the account.
func (d AccountDetails) Apply(a *Account) {
	a.Number = d.Number
	a.Name = d.Name
	a.Address = d.Address
	a.Area = d.Area
	a.Residents = d.Residents
	a.Company = d.Company
}
