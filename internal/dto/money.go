package dto

import (
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/utils"
)

// TotalResponse is a single money total for an account.
type TotalResponse struct {
	AccountID string `json:"accountID"`
	Total     string `json:"total" example:"125.00"`
}

// ToAccountBalanceResponse formats the balance amounts to two decimals.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:    b.AccountID,
		TotalCharged: utils.FormatMoney(b.TotalCharged),
		TotalPaid:    utils.FormatMoney(b.TotalPaid),
		Outstanding:  utils.FormatMoney(b.Outstanding),
	}
}
