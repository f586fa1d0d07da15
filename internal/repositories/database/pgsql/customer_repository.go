package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_onboarding_app/internal/models"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/fieldcrypt"
	"github.com/SscSPs/bank_onboarding_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const (
	customersDocumentNumberKey = "customers_document_number_key"
	customersEmailKey          = "customers_email_key"

	customerColumns = `customer_id, document_type, document_number, full_name, email, created_at, updated_at`
)

// PgxCustomerRepository stores customers in PostgreSQL. Document number and
// email pass through the column converter on every write, read and lookup.
type PgxCustomerRepository struct {
	BaseRepository
	converter *fieldcrypt.ColumnConverter
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool DBPool, converter *fieldcrypt.ColumnConverter) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}, converter: converter}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var m models.Customer
	if err := row.Scan(
		&m.CustomerID,
		&m.DocumentType,
		&m.DocumentNumber,
		&m.FullName,
		&m.Email,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := r.converter.DecryptFields(&m); err != nil {
		return nil, fmt.Errorf("failed to decrypt customer %s: %w", m.CustomerID, err)
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

// SaveCustomer inserts a new customer with its sensitive columns encrypted.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	if err := r.converter.EncryptFields(&m); err != nil {
		return fmt.Errorf("failed to encrypt customer %s: %w", m.CustomerID, err)
	}

	query := `
		INSERT INTO customers (customer_id, document_type, document_number, full_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.DocumentType,
		m.DocumentNumber,
		m.FullName,
		m.Email,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err == nil {
		return nil
	}

	if pgErr, ok := pgErrorFor(err, pgUniqueViolation); ok {
		switch pgErr.ConstraintName {
		case customersDocumentNumberKey:
			return fmt.Errorf("%w: document number already registered", apperrors.ErrDuplicateCustomer)
		case customersEmailKey:
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicateCustomer)
		}
		return fmt.Errorf("%w: customer %s violates %s", apperrors.ErrDuplicateCustomer, m.CustomerID, pgErr.ConstraintName)
	}
	return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`

	c, err := r.scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return c, nil
}

// FindAllCustomers retrieves every customer, oldest first.
func (r *PgxCustomerRepository) FindAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at, customer_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// ExistsCustomerByID reports whether a customer with the given ID exists.
func (r *PgxCustomerRepository) ExistsCustomerByID(ctx context.Context, customerID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1);`, customerID)
}

// ExistsByDocumentNumber looks the plaintext value up by its ciphertext.
func (r *PgxCustomerRepository) ExistsByDocumentNumber(ctx context.Context, documentNumber string) (bool, error) {
	stored, err := r.converter.ToColumnString(documentNumber)
	if err != nil {
		return false, fmt.Errorf("failed to encrypt document number lookup: %w", err)
	}
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE document_number = $1);`, stored)
}

// ExistsByEmail looks the plaintext value up by its ciphertext.
func (r *PgxCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	stored, err := r.converter.ToColumnString(email)
	if err != nil {
		return false, fmt.Errorf("failed to encrypt email lookup: %w", err)
	}
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1);`, stored)
}

func (r *PgxCustomerRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to run existence check: %w", err)
	}
	return exists, nil
}
