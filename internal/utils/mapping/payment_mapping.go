package mapping

import (
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		ChargeID:      d.ChargeID,
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		ReceiptNumber: d.ReceiptNumber,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) (domain.Payment, error) {
	status, err := domain.ParsePaymentStatus(m.Status)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ChargeID:      m.ChargeID,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		ReceiptNumber: m.ReceiptNumber,
		Status:        status,
		CreatedAt:     m.CreatedAt,
	}, nil
}

// ToDomainReceipt converts a joined receipt row to a domain Receipt
func ToDomainReceipt(m models.Receipt) (domain.Receipt, error) {
	status, err := domain.ParsePaymentStatus(m.Status)
	if err != nil {
		return domain.Receipt{}, err
	}
	return domain.Receipt{
		PaymentID:     m.PaymentID,
		ReceiptNumber: m.ReceiptNumber,
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		Status:        status,
		ChargeID:      m.ChargeID,
		ServiceType:   m.ServiceType,
		Period:        m.Period,
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		HolderName:    m.HolderName,
		Address:       m.Address,
	}, nil
}
