package dto

import (
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to onboard a customer.
type CreateCustomerRequest struct {
	DocumentType   string `json:"documentType" binding:"required,documenttype"`
	DocumentNumber string `json:"documentNumber" binding:"required"`
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
}

// CustomerResponse defines the data returned for a customer. Sensitive fields
// are returned in plaintext to the caller.
type CustomerResponse struct {
	ID             string    `json:"id"`
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.CustomerID,
		DocumentType:   string(c.DocumentType),
		DocumentNumber: c.DocumentNumber,
		FullName:       c.FullName,
		Email:          c.Email,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToListCustomerResponse converts customers to response DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
