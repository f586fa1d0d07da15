package services

import (
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account creation consults the customer service, so it goes first.
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Account = NewAccountService(repos.AccountRepo, container.Customer)
	container.Auth = NewAuthService(cfg)
	container.Health = NewHealthService(repos.Health)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.CustomerSvcFacade = (*customerService)(nil)
	_ portssvc.AuthSvc           = (*authService)(nil)
	_ portssvc.HealthSvc         = (*healthService)(nil)
)
