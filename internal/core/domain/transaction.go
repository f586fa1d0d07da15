package domain

import (
	"fmt"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a balance movement.
type TransactionType string

const (
	Deposit    TransactionType = "DEPOSIT"
	Withdrawal TransactionType = "WITHDRAWAL"
)

// MoneyScale is the number of fraction digits stored for amounts and balances.
const MoneyScale = 2

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Deposit || t == Withdrawal
}

// ValidateTransaction checks a transaction request before any account is read.
func ValidateTransaction(txType TransactionType, amount decimal.Decimal) error {
	if !txType.IsValid() {
		return fmt.Errorf("%w: transaction type must be DEPOSIT or WITHDRAWAL, got %q", apperrors.ErrValidation, txType)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Round(MoneyScale)) {
		return fmt.Errorf("%w: amount must have at most %d decimal places", apperrors.ErrValidation, MoneyScale)
	}
	return nil
}
