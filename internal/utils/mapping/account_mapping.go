package mapping

import (
	"github.com/SscSPs/utility_billing_app/internal/core/domain"
	"github.com/SscSPs/utility_billing_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Number:      d.Number,
		Name:        d.Name,
		Address:     d.Address,
		Area:        d.Area,
		Residents:   d.Residents,
		Company:     d.Company,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
// It fails when the stored status is not a known AccountStatus.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	status, err := domain.ParseAccountStatus(m.Status)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Number:      m.Number,
		Name:        m.Name,
		Address:     m.Address,
		Area:        m.Area,
		Residents:   m.Residents,
		Company:     m.Company,
		Status:      status,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}
