package dto

import (
	"time"

	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/utils"
	"github.com/SscSPs/utility_billing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// MakePaymentRequest defines the body of a payment against one charge.
type MakePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00"`
}

// SettleChargesRequest selects the billing period to settle; empty settles all periods.
type SettleChargesRequest struct {
	Period string `json:"period" example:"2023-01"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string    `json:"paymentID"`
	ChargeID      string    `json:"chargeID"`
	Amount        string    `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	ReceiptNumber string    `json:"receiptNumber"`
	Status        string    `json:"status"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ChargeID:      p.ChargeID,
		Amount:        utils.FormatMoney(p.Amount),
		PaymentDate:   p.PaymentDate,
		ReceiptNumber: p.ReceiptNumber,
		Status:        string(p.Status),
	}
}

// ListPaymentsResponse wraps the payments of an account.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to the list DTO
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: res}
}

// SettlementResponse reports the payments created by a settlement.
type SettlementResponse struct {
	AccountID string            `json:"accountID"`
	Period    string            `json:"period,omitempty"`
	Payments  []PaymentResponse `json:"payments"`
	Total     string            `json:"total"`
}

// ToSettlementResponse converts settled payments to the settlement DTO
func ToSettlementResponse(accountID, period string, payments []domain.Payment) SettlementResponse {
	return SettlementResponse{
		AccountID: accountID,
		Period:    period,
		Payments:  ToListPaymentsResponse(payments).Payments,
		Total:     utils.FormatMoney(accounting.SumPayments(payments)),
	}
}

// ReceiptResponse is the printable view of a payment.
type ReceiptResponse struct {
	ReceiptNumber string    `json:"receiptNumber"`
	PaymentID     string    `json:"paymentID"`
	Amount        string    `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	Status        string    `json:"status"`
	ChargeID      string    `json:"chargeID"`
	ServiceType   string    `json:"serviceType"`
	Period        string    `json:"period"`
	AccountID     string    `json:"accountID"`
	AccountNumber string    `json:"accountNumber"`
	HolderName    string    `json:"holderName"`
	Address       string    `json:"address"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptNumber: r.ReceiptNumber,
		PaymentID:     r.PaymentID,
		Amount:        utils.FormatMoney(r.Amount),
		PaymentDate:   r.PaymentDate,
		Status:        string(r.Status),
		ChargeID:      r.ChargeID,
		ServiceType:   r.ServiceType,
		Period:        r.Period,
		AccountID:     r.AccountID,
		AccountNumber: r.AccountNumber,
		HolderName:    r.HolderName,
		Address:       r.Address,
	}
}
