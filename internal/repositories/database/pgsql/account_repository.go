package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_onboarding_app/internal/models"
	"github.com/SscSPs/bank_onboarding_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const (
	accountsCustomerIDKey    = "accounts_customer_id_key"
	accountsAccountNumberKey = "accounts_account_number_key"

	accountColumns = `account_id, customer_id, account_number, status, balance, version, created_at, updated_at`
)

// PgxAccountRepository stores accounts in PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool DBPool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.CustomerID,
		&m.AccountNumber,
		&m.Status,
		&m.Balance,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, customer_id, account_number, status, balance, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CustomerID,
		m.AccountNumber,
		m.Status,
		m.Balance,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err == nil {
		return nil
	}

	if pgErr, ok := pgErrorFor(err, pgUniqueViolation); ok {
		switch pgErr.ConstraintName {
		case accountsAccountNumberKey:
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNumberTaken, m.AccountNumber)
		case accountsCustomerIDKey:
			return fmt.Errorf("%w: customer %s", apperrors.ErrAccountExists, m.CustomerID)
		}
		return fmt.Errorf("%w: account %s violates %s", apperrors.ErrConflict, m.AccountID, pgErr.ConstraintName)
	}
	if _, ok := pgErrorFor(err, pgForeignKeyViolation); ok {
		return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, m.CustomerID)
	}
	return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAllAccounts retrieves every account, oldest first.
func (r *PgxAccountRepository) FindAllAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at, account_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	return collectAccounts(rows)
}

// FindAccountsByCustomerID retrieves the accounts of one customer.
func (r *PgxAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1 ORDER BY created_at, account_id;`

	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for customer %s: %w", customerID, err)
	}
	return collectAccounts(rows)
}

// ExistsByCustomerID reports whether the customer already owns an account.
func (r *PgxAccountRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE customer_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, customerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account for customer %s: %w", customerID, err)
	}
	return exists, nil
}

// FindAccountByIDForUpdate retrieves an account and locks its row.
// Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`

	m, err := scanAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// UpdateAccountInTx persists the mutable columns of a locked account.
func (r *PgxAccountRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET status = $2, balance = $3, updated_at = $4, version = version + 1
		WHERE account_id = $1 AND version = $5;
	`
	cmdTag, err := tx.Exec(ctx, query, m.AccountID, m.Status, m.Balance, m.UpdatedAt, m.Version)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s at version %d", apperrors.ErrConcurrentUpdate, m.AccountID, m.Version)
	}
	return nil
}
