package services_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// memTx buffers account writes until commit and holds the row locks taken by
// FindAccountByIDForUpdate.
type memTx struct {
	pgx.Tx
	locks   []*sync.Mutex
	pending map[string]domain.Account
	done    bool
}

func (t *memTx) release() {
	for i := len(t.locks) - 1; i >= 0; i-- {
		t.locks[i].Unlock()
	}
	t.locks = nil
	t.done = true
}

// memAccountRepo is an in-memory account store whose row locks behave like
// SELECT ... FOR UPDATE.
type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	order    []string
	rowLocks map[string]*sync.Mutex
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{
		accounts: map[string]domain.Account{},
		rowLocks: map[string]*sync.Mutex{},
	}
}

var _ portsrepo.AccountRepositoryWithTx = (*memAccountRepo)(nil)

func (r *memAccountRepo) rowLock(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		r.rowLocks[id] = l
	}
	return l
}

func (r *memAccountRepo) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, nil
}

func (r *memAccountRepo) FindAllAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.accounts[id])
	}
	return out, nil
}

func (r *memAccountRepo) FindAccountsByCustomerID(_ context.Context, customerID string) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Account
	for _, id := range r.order {
		if r.accounts[id].CustomerID == customerID {
			out = append(out, r.accounts[id])
		}
	}
	return out, nil
}

func (r *memAccountRepo) ExistsByCustomerID(_ context.Context, customerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.CustomerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAccountRepo) SaveAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acc := range r.accounts {
		if acc.AccountNumber == account.AccountNumber {
			return apperrors.ErrAccountNumberTaken
		}
		if acc.CustomerID == account.CustomerID {
			return apperrors.ErrAccountExists
		}
	}
	r.accounts[account.AccountID] = account
	r.order = append(r.order, account.AccountID)
	return nil
}

func (r *memAccountRepo) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	if _, err := r.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	lock := r.rowLock(accountID)
	lock.Lock()
	t := tx.(*memTx)
	t.locks = append(t.locks, lock)
	return r.FindAccountByID(ctx, accountID)
}

func (r *memAccountRepo) UpdateAccountInTx(_ context.Context, tx pgx.Tx, account domain.Account) error {
	r.mu.Lock()
	stored, ok := r.accounts[account.AccountID]
	r.mu.Unlock()
	if !ok || stored.Version != account.Version {
		return apperrors.ErrConcurrentUpdate
	}
	account.Version++
	tx.(*memTx).pending[account.AccountID] = account
	return nil
}

func (r *memAccountRepo) Begin(_ context.Context) (pgx.Tx, error) {
	return &memTx{pending: map[string]domain.Account{}}, nil
}

func (r *memAccountRepo) Commit(_ context.Context, tx pgx.Tx) error {
	t := tx.(*memTx)
	if t.done {
		return pgx.ErrTxClosed
	}
	r.mu.Lock()
	for id, acc := range t.pending {
		r.accounts[id] = acc
	}
	r.mu.Unlock()
	t.release()
	return nil
}

func (r *memAccountRepo) Rollback(_ context.Context, tx pgx.Tx) error {
	t := tx.(*memTx)
	if t.done {
		return nil
	}
	t.pending = nil
	t.release()
	return nil
}

// memCustomerRepo is an in-memory customer store with the same uniqueness
// rules as the database.
type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]domain.Customer
	order     []string
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]domain.Customer{}}
}

var _ portsrepo.CustomerRepositoryFacade = (*memCustomerRepo)(nil)

func (r *memCustomerRepo) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
	}
	return &c, nil
}

func (r *memCustomerRepo) FindAllCustomers(_ context.Context) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.customers[id])
	}
	return out, nil
}

func (r *memCustomerRepo) ExistsCustomerByID(_ context.Context, customerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.customers[customerID]
	return ok, nil
}

func (r *memCustomerRepo) ExistsByDocumentNumber(_ context.Context, documentNumber string) (bool, error) {
	return r.any(func(c domain.Customer) bool { return c.DocumentNumber == documentNumber }), nil
}

func (r *memCustomerRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.any(func(c domain.Customer) bool { return c.Email == email }), nil
}

func (r *memCustomerRepo) any(match func(domain.Customer) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if match(c) {
			return true
		}
	}
	return false
}

func (r *memCustomerRepo) SaveCustomer(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.DocumentNumber == customer.DocumentNumber || c.Email == customer.Email {
			return apperrors.ErrDuplicateCustomer
		}
	}
	r.customers[customer.CustomerID] = customer
	r.order = append(r.order, customer.CustomerID)
	return nil
}
