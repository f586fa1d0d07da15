package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/core/services"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

func juanPerez() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		DocumentType:   "CC",
		DocumentNumber: "123456",
		FullName:       "Juan Perez",
		Email:          "juan@test.com",
	}
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	req := juanPerez()
	suite.mockRepo.On("ExistsByDocumentNumber", suite.ctx, "123456").Return(false, nil).Once()
	suite.mockRepo.On("ExistsByEmail", suite.ctx, "juan@test.com").Return(false, nil).Once()
	suite.mockRepo.On("SaveCustomer", suite.ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.DocumentNumber == "123456" && c.Email == "juan@test.com" && c.DocumentType == domain.DocumentCC
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(suite.ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerID)
	suite.Equal("Juan Perez", customer.FullName)
	suite.False(customer.CreatedAt.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicateDocumentNumber() {
	suite.mockRepo.On("ExistsByDocumentNumber", suite.ctx, "123456").Return(true, nil).Once()

	customer, err := suite.service.CreateCustomer(suite.ctx, juanPerez())

	suite.Nil(customer)
	suite.ErrorIs(err, apperrors.ErrDuplicateCustomer)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), "document number")
	suite.NotContains(err.Error(), "123456")
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsByEmail", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicateEmail() {
	suite.mockRepo.On("ExistsByDocumentNumber", suite.ctx, "123456").Return(false, nil).Once()
	suite.mockRepo.On("ExistsByEmail", suite.ctx, "juan@test.com").Return(true, nil).Once()

	_, err := suite.service.CreateCustomer(suite.ctx, juanPerez())

	suite.ErrorIs(err, apperrors.ErrDuplicateCustomer)
	suite.Contains(err.Error(), "email")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_InsertRace() {
	suite.mockRepo.On("ExistsByDocumentNumber", suite.ctx, "123456").Return(false, nil).Once()
	suite.mockRepo.On("ExistsByEmail", suite.ctx, "juan@test.com").Return(false, nil).Once()
	suite.mockRepo.On("SaveCustomer", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicateCustomer).Once()

	_, err := suite.service.CreateCustomer(suite.ctx, juanPerez())

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_InvalidInput() {
	tests := []struct {
		name string
		edit func(*dto.CreateCustomerRequest)
	}{
		{"document type", func(r *dto.CreateCustomerRequest) { r.DocumentType = "DNI" }},
		{"blank name", func(r *dto.CreateCustomerRequest) { r.FullName = "   " }},
		{"blank document number", func(r *dto.CreateCustomerRequest) { r.DocumentNumber = "" }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := juanPerez()
			tt.edit(&req)
			_, err := suite.service.CreateCustomer(suite.ctx, req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ExistsByDocumentNumber", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_LookupError() {
	suite.mockRepo.On("ExistsByDocumentNumber", suite.ctx, "123456").Return(false, apperrors.ErrCrypto).Once()

	_, err := suite.service.CreateCustomer(suite.ctx, juanPerez())

	suite.ErrorIs(err, apperrors.ErrCrypto)
}

func (suite *CustomerServiceTestSuite) TestGetAllCustomers_EmptyIsNotNil() {
	suite.mockRepo.On("FindAllCustomers", suite.ctx).Return(nil, nil).Once()

	customers, err := suite.service.GetAllCustomers(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(customers)
	suite.Empty(customers)
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_NotFound() {
	suite.mockRepo.On("FindCustomerByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCustomerByID(suite.ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CustomerServiceTestSuite) TestCustomerExists() {
	suite.mockRepo.On("ExistsCustomerByID", suite.ctx, "cus-1").Return(true, nil).Once()

	exists, err := suite.service.CustomerExists(suite.ctx, "cus-1")

	suite.Require().NoError(err)
	suite.True(exists)
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func TestCustomerService_UniquenessInMemory(t *testing.T) {
	ctx := context.Background()
	customers, _, _ := newInMemoryServices()

	_, err := customers.CreateCustomer(ctx, juanPerez())
	assert.NoError(t, err)

	sameDocument := juanPerez()
	sameDocument.Email = "other@test.com"
	_, err = customers.CreateCustomer(ctx, sameDocument)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	sameEmail := juanPerez()
	sameEmail.DocumentNumber = "654321"
	_, err = customers.CreateCustomer(ctx, sameEmail)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	all, err := customers.GetAllCustomers(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}
