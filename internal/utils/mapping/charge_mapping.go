package mapping

import (
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/models"
)

// ToModelCharge converts a domain Charge to a model Charge
func ToModelCharge(d domain.Charge) models.Charge {
	return models.Charge{
		ChargeID:    d.ChargeID,
		AccountID:   d.AccountID,
		ServiceType: d.ServiceType,
		Tariff:      d.Tariff,
		Volume:      d.Volume,
		Amount:      d.Amount,
		Period:      d.Period,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCharge converts a model Charge to a domain Charge
func ToDomainCharge(m models.Charge) (domain.Charge, error) {
	status, err := domain.ParseChargeStatus(m.Status)
	if err != nil {
		return domain.Charge{}, err
	}
	return domain.Charge{
		ChargeID:    m.ChargeID,
		AccountID:   m.AccountID,
		ServiceType: m.ServiceType,
		Tariff:      m.Tariff,
		Volume:      m.Volume,
		Amount:      m.Amount,
		Period:      m.Period,
		Status:      status,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}
