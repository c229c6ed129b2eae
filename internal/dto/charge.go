package dto

import (
	"time"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/utils"
	"github.com/SscSPs/utility_billing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// CreateChargeRequest posts a charge. Supplying amount makes it a flat charge,
// otherwise tariff and volume are both required and amount = tariff * volume.
type CreateChargeRequest struct {
	ServiceType string           `json:"serviceType" binding:"required" example:"water"`
	Tariff      *decimal.Decimal `json:"tariff,omitempty" swaggertype:"string" example:"2.50"`
	Volume      *decimal.Decimal `json:"volume,omitempty" swaggertype:"string" example:"20"`
	Amount      *decimal.Decimal `json:"amount,omitempty" swaggertype:"string"`
	Period      string           `json:"period" binding:"required" example:"2023-01"`
}

// IsFlat reports whether the request carries a direct amount.
func (r CreateChargeRequest) IsFlat() bool {
	return r.Amount != nil
}

// ListChargesParams binds the optional period filter.
type ListChargesParams struct {
	Period string `form:"period"`
}

// ChargeResponse defines the data returned for a charge.
type ChargeResponse struct {
	ChargeID      string    `json:"chargeID"`
	AccountID     string    `json:"accountID"`
	ServiceType   string    `json:"serviceType"`
	Tariff        string    `json:"tariff"`
	Volume        string    `json:"volume"`
	Amount        string    `json:"amount"`
	Period        string    `json:"period"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToChargeResponse converts a domain.Charge to ChargeResponse DTO
func ToChargeResponse(c *domain.Charge) ChargeResponse {
	return ChargeResponse{
		ChargeID:      c.ChargeID,
		AccountID:     c.AccountID,
		ServiceType:   c.ServiceType,
		Tariff:        c.Tariff.String(),
		Volume:        c.Volume.String(),
		Amount:        utils.FormatMoney(c.Amount),
		Period:        c.Period,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ListChargesResponse lists charges with the sum of those still awaiting payment.
type ListChargesResponse struct {
	Charges     []ChargeResponse `json:"charges"`
	Outstanding string           `json:"outstanding"`
}

// ToListChargesResponse converts a slice of domain.Charge to the list DTO
func ToListChargesResponse(charges []domain.Charge) ListChargesResponse {
	res := make([]ChargeResponse, len(charges))
	for i := range charges {
		res[i] = ToChargeResponse(&charges[i])
	}
	return ListChargesResponse{
		Charges:     res,
		Outstanding: utils.FormatMoney(accounting.SumOutstanding(charges)),
	}
}
