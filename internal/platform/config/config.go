package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Field encryption. When EncryptionEnabled is false PII is stored as plaintext.
	EncryptionEnabled bool
	EncryptionKey     string

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"

	// Optional operator authentication for the /api routes.
	AuthEnabled          bool
	JWTSecret            string
	JWTExpiryDuration    time.Duration
	JWTIssuer            string
	OperatorUsername     string
	OperatorPasswordHash string // bcrypt
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("ENCRYPTION_ENABLED", true)
	v.SetDefault("ENCRYPTION_KEY", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:4200")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "bank-onboarding-api")
	v.SetDefault("OPERATOR_USERNAME", "")
	v.SetDefault("OPERATOR_PASSWORD_HASH", "")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		EncryptionEnabled:    v.GetBool("ENCRYPTION_ENABLED"),
		EncryptionKey:        v.GetString("ENCRYPTION_KEY"),
		CORSAllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:            v.GetString("RATE_LIMIT"),
		AuthEnabled:          v.GetBool("AUTH_ENABLED"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		OperatorUsername:     v.GetString("OPERATOR_USERNAME"),
		OperatorPasswordHash: v.GetString("OPERATOR_PASSWORD_HASH"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr),
			slog.String("default", jwtExpiryDuration.String()))
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	if c.EncryptionEnabled && strings.TrimSpace(c.EncryptionKey) == "" {
		return fmt.Errorf("%w: ENCRYPTION_KEY is required when ENCRYPTION_ENABLED is true", apperrors.ErrConfiguration)
	}
	if c.AuthEnabled {
		if c.JWTSecret == "" {
			return fmt.Errorf("%w: JWT_SECRET is required when AUTH_ENABLED is true", apperrors.ErrConfiguration)
		}
		if c.OperatorUsername == "" || c.OperatorPasswordHash == "" {
			return fmt.Errorf("%w: OPERATOR_USERNAME and OPERATOR_PASSWORD_HASH are required when AUTH_ENABLED is true", apperrors.ErrConfiguration)
		}
	}
	if c.RateLimit == "" {
		return fmt.Errorf("%w: RATE_LIMIT must not be empty", apperrors.ErrConfiguration)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
