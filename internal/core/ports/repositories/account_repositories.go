package repositories

import (
	"context"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAllAccounts retrieves every account ordered by creation time.
	FindAllAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountsByCustomerID retrieves the accounts owned by a customer.
	FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)

	// ExistsByCustomerID reports whether the customer already owns an account.
	ExistsByCustomerID(ctx context.Context, customerID string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A clash on the account number yields
	// apperrors.ErrAccountNumberTaken, a clash on the customer apperrors.ErrAccountExists.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines operations that run inside a caller-owned transaction
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row until tx ends.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// UpdateAccountInTx writes status, balance and updated_at, guarded by the
	// account's current version. A stale version yields apperrors.ErrConcurrentUpdate.
	UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
