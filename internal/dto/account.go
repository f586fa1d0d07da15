package dto

import (
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open an account.
type CreateAccountRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
}

// UpdateAccountStatusRequest defines the body of a status change.
type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required,accountstatus"`
}

// TransactionRequest defines a deposit or withdrawal. It is not persisted.
type TransactionRequest struct {
	Type   string           `json:"type" binding:"required,oneof=DEPOSIT WITHDRAWAL"`
	Amount *decimal.Decimal `json:"amount" binding:"required,money2dp" swaggertype:"number"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	CustomerID string `form:"customerId"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	AccountNumber string          `json:"accountNumber"`
	Status        string          `json:"status"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"number"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.AccountID,
		CustomerID:    acc.CustomerID,
		AccountNumber: acc.AccountNumber,
		Status:        string(acc.Status),
		Balance:       acc.Balance.Round(domain.MoneyScale),
		CreatedAt:     acc.CreatedAt,
		UpdatedAt:     acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
