package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that a request clashes with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrConfiguration indicates missing or invalid startup configuration.
var ErrConfiguration = errors.New("configuration error")

// ErrCrypto indicates that a value could not be encrypted or decrypted.
var ErrCrypto = errors.New("crypto error")

// ErrUnauthorized indicates invalid operator credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Conflict refinements. Each one matches ErrConflict under errors.Is.
var (
	ErrDuplicateCustomer  = conflict("customer already exists")
	ErrAccountExists      = conflict("customer already has an account")
	ErrInsufficientFunds  = conflict("insufficient funds")
	ErrAccountInactive    = conflict("account is inactive")
	ErrAccountNumberTaken = conflict("account number already in use")
	ErrConcurrentUpdate   = conflict("account was modified concurrently")
)

func conflict(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrConflict)
}
