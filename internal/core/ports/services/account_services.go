package services

import (
	"context"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAllAccounts retrieves every account.
	GetAllAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountsByCustomerID retrieves the accounts owned by one customer.
	GetAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens the single account a customer may hold.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// SetStatus activates or deactivates an account.
	SetStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error)
}

// AccountTransactionSvc moves money in and out of accounts
type AccountTransactionSvc interface {
	// ApplyTransaction deposits into or withdraws from an account atomically.
	ApplyTransaction(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountTransactionSvc
}
