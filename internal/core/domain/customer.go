package domain

import (
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
)

// DocumentType is the kind of identity document a customer registers with.
type DocumentType string

const (
	DocumentCC  DocumentType = "CC"  // cédula de ciudadanía
	DocumentCE  DocumentType = "CE"  // cédula de extranjería
	DocumentPAS DocumentType = "PAS" // passport
)

// IsValid reports whether d is an accepted document type.
func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentCC, DocumentCE, DocumentPAS:
		return true
	}
	return false
}

// ParseDocumentType validates a raw document type value.
func ParseDocumentType(raw string) (DocumentType, error) {
	d := DocumentType(raw)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: document type must be CC, CE or PAS", apperrors.ErrValidation)
	}
	return d, nil
}

// Customer is a person onboarded by the bank. DocumentNumber and Email are
// plaintext here; they are encrypted only when stored.
type Customer struct {
	CustomerID     string       `json:"id"`
	DocumentType   DocumentType `json:"documentType"`
	DocumentNumber string       `json:"documentNumber"`
	FullName       string       `json:"fullName"`
	Email          string       `json:"email"`
	AuditFields
}
