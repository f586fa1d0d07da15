package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/bank_onboarding_app/internal/core/services"
	"github.com/SscSPs/bank_onboarding_app/internal/handlers"
	"github.com/SscSPs/bank_onboarding_app/internal/middleware"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/config"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/fieldcrypt"
	"github.com/SscSPs/bank_onboarding_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bank_onboarding_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Bank Onboarding API
// @version 1.1.0
// @description Customer onboarding and account transactions with encrypted PII.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Balances are serialized as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	converter, err := newColumnConverter(logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize field encryption", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool, converter)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	globalLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(globalLimiter),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newColumnConverter derives the field cipher from ENCRYPTION_KEY, or returns a
// passthrough converter when encryption is disabled.
func newColumnConverter(logger *slog.Logger, cfg *config.Config) (*fieldcrypt.ColumnConverter, error) {
	if !cfg.EncryptionEnabled {
		logger.Warn("Field encryption disabled, customer PII will be stored in plaintext")
		return fieldcrypt.NewColumnConverter(nil), nil
	}

	km, err := fieldcrypt.DeriveKeyMaterial(cfg.EncryptionKey)
	if err != nil {
		return nil, err
	}
	cipher, err := fieldcrypt.NewFieldCipher(km)
	if err != nil {
		return nil, err
	}
	logger.Info("Field encryption enabled", slog.String("key_fingerprint", km.Fingerprint()))
	return fieldcrypt.NewColumnConverter(cipher), nil
}
