package services

import (
	"context"

	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	GetAllCustomers(ctx context.Context) ([]domain.Customer, error)
	CustomerExists(ctx context.Context, customerID string) (bool, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	// CreateCustomer onboards a customer whose document number and email are unused.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
