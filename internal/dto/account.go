package dto

import (
	"time"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a billing account.
type CreateAccountRequest struct {
	Number    string          `json:"number" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Address   string          `json:"address" binding:"required"`
	Area      decimal.Decimal `json:"area" swaggertype:"string" example:"54.50"`
	Residents int             `json:"residents" binding:"gte=0"`
	Company   string          `json:"company" binding:"required"`
}

// UpdateAccountRequest carries every editable field; the number must match the stored one.
type UpdateAccountRequest = CreateAccountRequest

// ToDetails converts the request into the validated domain input.
func (r CreateAccountRequest) ToDetails() domain.AccountDetails {
	return domain.AccountDetails{
		Number:    r.Number,
		Name:      r.Name,
		Address:   r.Address,
		Area:      r.Area,
		Residents: r.Residents,
		Company:   r.Company,
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	UserID        string    `json:"userID"`
	Number        string    `json:"number"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Area          string    `json:"area"`
	Residents     int       `json:"residents"`
	Company       string    `json:"company"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		UserID:        acc.UserID,
		Number:        acc.Number,
		Name:          acc.Name,
		Address:       acc.Address,
		Area:          acc.Area.String(),
		Residents:     acc.Residents,
		Company:       acc.Company,
		Status:        string(acc.Status),
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ListAccountsResponse wraps the accounts of a user.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToListAccountsResponse converts a slice of domain.Account to the list DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}

// AccountExistsParams binds the number query parameter.
type AccountExistsParams struct {
	Number string `form:"number" binding:"required"`
}

// AccountExistsResponse reports whether a number is registered.
type AccountExistsResponse struct {
	Number string `json:"number"`
	Exists bool   `json:"exists"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID    string `json:"accountID"`
	TotalCharged string `json:"totalCharged"`
	TotalPaid    string `json:"totalPaid"`
	Outstanding  string `json:"outstanding"`
}
