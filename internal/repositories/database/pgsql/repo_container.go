package pgsql

import (
	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/fieldcrypt"
)

// NewRepositoryProvider wires the pgx repositories. converter decides whether
// customer PII is encrypted at rest.
func NewRepositoryProvider(dbPool DBPool, converter *fieldcrypt.ColumnConverter) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool, converter),
		Health:       &BaseRepository{Pool: dbPool},
	}
}
