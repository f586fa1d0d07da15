package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
	"github.com/google/uuid"
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	now          func() time.Time
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo, now: time.Now}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer rejects a document number or email that is already registered,
// checking the document number first. Lookups compare exact values.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	docType, err := domain.ParseDocumentType(req.DocumentType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.DocumentNumber) == "" || strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: document number, full name and email are required", apperrors.ErrValidation)
	}
	s.LogInfo(ctx, "Creating customer", slog.String("document_type", string(docType)))

	taken, err := s.customerRepo.ExistsByDocumentNumber(ctx, req.DocumentNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check document number")
		return nil, err
	}
	if taken {
		s.LogWarn(ctx, "Duplicate customer document number")
		return nil, fmt.Errorf("%w: a customer with this document number already exists", apperrors.ErrDuplicateCustomer)
	}

	taken, err = s.customerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check email")
		return nil, err
	}
	if taken {
		s.LogWarn(ctx, "Duplicate customer email")
		return nil, fmt.Errorf("%w: a customer with this email already exists", apperrors.ErrDuplicateCustomer)
	}

	now := s.now().UTC()
	customer := domain.Customer{
		CustomerID:     uuid.NewString(),
		DocumentType:   docType,
		DocumentNumber: req.DocumentNumber,
		FullName:       req.FullName,
		Email:          req.Email,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Customer insert hit a unique constraint", slog.String("error", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to save customer")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetAllCustomers lists every customer with decrypted fields.
func (s *customerService) GetAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindAllCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

// GetCustomerByID retrieves one customer.
func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

// CustomerExists reports whether a customer with the ID exists.
func (s *customerService) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	return s.customerRepo.ExistsCustomerByID(ctx, customerID)
}
