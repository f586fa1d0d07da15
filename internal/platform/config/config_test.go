package config

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads. Viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PGSQL_URL", "PORT", "IS_PRODUCTION", "ENABLE_DB_CHECK", "MIGRATIONS_PATH",
		"ENCRYPTION_ENABLED", "ENCRYPTION_KEY", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT",
		"AUTH_ENABLED", "JWT_SECRET", "JWT_EXPIRY_DURATION", "JWT_ISSUER",
		"OPERATOR_USERNAME", "OPERATOR_PASSWORD_HASH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENCRYPTION_KEY", "correct horse battery staple")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.True(t, cfg.EncryptionEnabled)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "bank-onboarding-api", cfg.JWTIssuer)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENCRYPTION_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.EncryptionEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
}

func TestLoadInvalidExpiryFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENCRYPTION_ENABLED", "false")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"encryption without key", Config{EncryptionEnabled: true, EncryptionKey: "  ", RateLimit: "1-S"}, true},
		{"encryption with key", Config{EncryptionEnabled: true, EncryptionKey: "k", RateLimit: "1-S"}, false},
		{"auth without secret", Config{AuthEnabled: true, OperatorUsername: "op", OperatorPasswordHash: "h", RateLimit: "1-S"}, true},
		{"auth without operator", Config{AuthEnabled: true, JWTSecret: "s", RateLimit: "1-S"}, true},
		{"auth complete", Config{AuthEnabled: true, JWTSecret: "s", OperatorUsername: "op", OperatorPasswordHash: "h", RateLimit: "1-S"}, false},
		{"empty rate limit", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadRejectsMissingKey(t *testing.T) {
	clearEnv(t)

	_, err := loadFrom(viper.New())
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}
