package repositories

import (
	"context"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data. Lookup values are
// plaintext; implementations encrypt them before querying.
type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	FindAllCustomers(ctx context.Context) ([]domain.Customer, error)
	ExistsCustomerByID(ctx context.Context, customerID string) (bool, error)
	ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer. A unique violation on the document
	// number or email yields apperrors.ErrDuplicateCustomer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
