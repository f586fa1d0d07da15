package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the back-office operator.
type AuthSvc interface {
	// Login checks the operator credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (token string, expiresAt time.Time, err error)
}

// HealthSvc reports whether the service dependencies are reachable.
type HealthSvc interface {
	CheckDatabase(ctx context.Context) error
}
