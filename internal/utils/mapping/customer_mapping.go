package mapping

import (
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/SscSPs/bank_onboarding_app/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer. Sensitive
// fields are still plaintext; the repository encrypts them before writing.
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:     d.CustomerID,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		FullName:       d.FullName,
		Email:          d.Email,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a decrypted model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:     m.CustomerID,
		DocumentType:   domain.DocumentType(m.DocumentType),
		DocumentNumber: m.DocumentNumber,
		FullName:       m.FullName,
		Email:          m.Email,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
