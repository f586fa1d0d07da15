package services

import (
	"context"
	"errors"

	portsrepo "github.com/SscSPs/bank_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
)

// healthService reports on the database connection.
type healthService struct {
	pinger portsrepo.Pinger
}

// NewHealthService creates a health service backed by a pinger.
func NewHealthService(pinger portsrepo.Pinger) portssvc.HealthSvc {
	return &healthService{pinger: pinger}
}

// CheckDatabase pings the database.
func (s *healthService) CheckDatabase(ctx context.Context) error {
	if s.pinger == nil {
		return errors.New("no database configured")
	}
	return s.pinger.Ping(ctx)
}
