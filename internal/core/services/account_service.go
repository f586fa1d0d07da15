package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
	"github.com/SscSPs/bank_onboarding_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAccountNumberAttempts bounds regeneration after an account number collision.
const maxAccountNumberAttempts = 3

// AccountNumberGenerator produces a candidate account number.
type AccountNumberGenerator func(now time.Time) (string, error)

// NewAccountNumber returns ACC-<unix millis>-<random 1000..9999>.
func NewAccountNumber(now time.Time) (string, error) {
	suffix, err := utils.SecureIntRange(1000, 9999)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number suffix: %w", err)
	}
	return fmt.Sprintf("ACC-%d-%d", now.UnixMilli(), suffix), nil
}

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryWithTx
	customerService portssvc.CustomerReaderSvc
	generateNumber  AccountNumberGenerator
	now             func() time.Time
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountNumberGenerator replaces the default account number generator
func WithAccountNumberGenerator(gen AccountNumberGenerator) AccountServiceOption {
	return func(s *accountService) {
		s.generateNumber = gen
	}
}

// WithClock replaces time.Now for timestamps
func WithClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryWithTx, customers portssvc.CustomerReaderSvc, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     repo,
		customerService: customers,
		generateNumber:  NewAccountNumber,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount opens an ACTIVE zero-balance account for an existing customer
// that has none yet.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	customerID := req.CustomerID
	s.LogInfo(ctx, "Creating account", slog.String("customer_id", customerID))

	exists, err := s.customerService.CustomerExists(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check customer", slog.String("customer_id", customerID))
		return nil, err
	}
	if !exists {
		s.LogWarn(ctx, "Customer not found", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}

	hasAccount, err := s.accountRepo.ExistsByCustomerID(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check existing account", slog.String("customer_id", customerID))
		return nil, err
	}
	if hasAccount {
		s.LogWarn(ctx, "Customer already has an account", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrAccountExists, customerID)
	}

	now := s.now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		CustomerID:  customerID,
		Status:      domain.AccountActive,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	for attempt := 1; ; attempt++ {
		account.AccountNumber, err = s.generateNumber(s.now())
		if err != nil {
			s.LogError(ctx, err, "Failed to generate account number", slog.String("customer_id", customerID))
			return nil, err
		}
		err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrAccountNumberTaken) || attempt == maxAccountNumberAttempts {
			s.LogError(ctx, err, "Failed to save account",
				slog.String("customer_id", customerID),
				slog.Int("attempt", attempt))
			return nil, err
		}
		s.LogWarn(ctx, "Account number collision, regenerating",
			slog.String("account_number", account.AccountNumber),
			slog.Int("attempt", attempt))
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_number", account.AccountNumber))
	return &account, nil
}

// GetAllAccounts lists every account.
func (s *accountService) GetAllAccounts(ctx context.Context) ([]domain.Account, error) {
	s.LogDebug(ctx, "Fetching all accounts")
	accounts, err := s.accountRepo.FindAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetAccountsByCustomerID lists the accounts of one customer. An unknown
// customer yields an empty list.
func (s *accountService) GetAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	s.LogDebug(ctx, "Fetching accounts for customer", slog.String("customer_id", customerID))
	accounts, err := s.accountRepo.FindAccountsByCustomerID(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetAccountByID retrieves one account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// SetStatus overwrites the account status under a row lock.
func (s *accountService) SetStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: status must be ACTIVE or INACTIVE, got %q", apperrors.ErrValidation, status)
	}
	s.LogInfo(ctx, "Updating account status",
		slog.String("account_id", accountID),
		slog.String("status", string(status)))

	account, err := s.mutateLocked(ctx, accountID, func(acc *domain.Account) error {
		acc.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account status updated",
		slog.String("account_id", accountID),
		slog.String("status", string(status)))
	return account, nil
}

// ApplyTransaction deposits or withdraws inside one database transaction that
// holds the account row lock, so concurrent withdrawals cannot overdraw.
func (s *accountService) ApplyTransaction(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal) (*domain.Account, error) {
	if err := domain.ValidateTransaction(txType, amount); err != nil {
		s.LogWarn(ctx, "Rejected transaction request",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}
	s.LogInfo(ctx, "Applying transaction",
		slog.String("account_id", accountID),
		slog.String("type", string(txType)),
		slog.String("amount", amount.StringFixed(domain.MoneyScale)))

	account, err := s.mutateLocked(ctx, accountID, func(acc *domain.Account) error {
		return acc.Apply(txType, amount)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction applied",
		slog.String("account_id", accountID),
		slog.String("balance", account.Balance.StringFixed(domain.MoneyScale)))
	return account, nil
}

// mutateLocked runs mutate against a row-locked copy of the account and
// persists the result. Any error rolls the transaction back and leaves the
// stored account unchanged.
func (s *accountService) mutateLocked(ctx context.Context, accountID string, mutate func(*domain.Account) error) (*domain.Account, error) {
	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("account_id", accountID))
		return nil, err
	}
	defer func() {
		// No-op once committed.
		if rbErr := s.accountRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction", slog.String("account_id", accountID))
		}
	}()

	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account not found", slog.String("account_id", accountID))
		} else {
			s.LogError(ctx, err, "Failed to lock account", slog.String("account_id", accountID))
		}
		return nil, err
	}

	if err := mutate(account); err != nil {
		s.LogWarn(ctx, "Account change rejected",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}
	account.UpdatedAt = s.now().UTC()

	if err := s.accountRepo.UpdateAccountInTx(ctx, tx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit account change", slog.String("account_id", accountID))
		return nil, err
	}

	account.Version++
	return account, nil
}
