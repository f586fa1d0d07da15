package mapping

import (
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/SscSPs/bank_onboarding_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		CustomerID:    d.CustomerID,
		AccountNumber: d.AccountNumber,
		Status:        string(d.Status),
		Balance:       d.Balance.Round(domain.MoneyScale),
		Version:       d.Version,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		CustomerID:    m.CustomerID,
		AccountNumber: m.AccountNumber,
		Status:        domain.AccountStatus(m.Status),
		Balance:       m.Balance,
		Version:       m.Version,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
