package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/SscSPs/bank_onboarding_app/internal/core/services"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/config"
	"github.com/SscSPs/bank_onboarding_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	return &config.Config{
		AuthEnabled:          true,
		JWTSecret:            "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:    time.Hour,
		JWTIssuer:            "bank-onboarding-test",
		OperatorUsername:     "operator",
		OperatorPasswordHash: hash,
	}
}

func TestAuthService_Login(t *testing.T) {
	cfg := newAuthConfig(t)
	svc := services.NewAuthService(cfg)

	token, expiresAt, err := svc.Login(context.Background(), "operator", "s3cret")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, "bank-onboarding-test", claims.Issuer)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := services.NewAuthService(newAuthConfig(t))

	tests := []struct {
		name, username, password string
	}{
		{"wrong password", "operator", "nope"},
		{"wrong user", "admin", "s3cret"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := svc.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
			assert.Empty(t, token)
		})
	}
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthService_CheckDatabase(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, services.NewHealthService(stubPinger{}).CheckDatabase(ctx))
	assert.ErrorIs(t, services.NewHealthService(stubPinger{err: assert.AnError}).CheckDatabase(ctx), assert.AnError)
	assert.Error(t, services.NewHealthService(nil).CheckDatabase(ctx))
}
