package domain

import (
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
)

// IsValid reports whether s is a known status.
func (s AccountStatus) IsValid() bool {
	return s == AccountActive || s == AccountInactive
}

// ParseAccountStatus validates a raw status value.
func ParseAccountStatus(raw string) (AccountStatus, error) {
	s := AccountStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: status must be ACTIVE or INACTIVE, got %q", apperrors.ErrValidation, raw)
	}
	return s, nil
}

// Account is a customer's single bank account.
type Account struct {
	AccountID     string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	AccountNumber string          `json:"accountNumber"` // ACC-<unix millis>-<4 digits>, immutable
	Status        AccountStatus   `json:"status"`
	Balance       decimal.Decimal `json:"balance"` // never negative
	Version       int64           `json:"version"` // bumped on every persisted change
	AuditFields
}

// IsActive reports whether the account accepts transactions.
func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// Apply moves money in or out of the account. It is the only way the balance
// changes, and it leaves the account untouched when it returns an error.
func (a *Account) Apply(txType TransactionType, amount decimal.Decimal) error {
	if err := ValidateTransaction(txType, amount); err != nil {
		return err
	}
	if !a.IsActive() {
		return fmt.Errorf("%w: account %s", apperrors.ErrAccountInactive, a.AccountID)
	}

	switch txType {
	case Deposit:
		a.Balance = a.Balance.Add(amount)
	case Withdrawal:
		if amount.GreaterThan(a.Balance) {
			return fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, a.AccountID)
		}
		a.Balance = a.Balance.Sub(amount)
	}
	return nil
}
