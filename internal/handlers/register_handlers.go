package handlers

import (
	"log/slog"

	"github.com/SscSPs/bank_onboarding_app/cmd/docs"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/middleware"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	// Plain liveness probe for load balancers
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")
	registerHomeRoutes(api, services.Health)

	if cfg.AuthEnabled {
		if err := registerAuthRoutes(api, services.Auth); err != nil {
			return err
		}
	}

	setupBusinessRoutes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupBusinessRoutes registers the customer and account routes, behind the
// operator JWT when auth is enabled.
func setupBusinessRoutes(api *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	group := api.Group("")
	if cfg.AuthEnabled {
		group.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	} else {
		slog.Warn("Operator authentication disabled, /api routes are public")
	}

	RegisterCustomerRoutes(group, services.Customer)
	RegisterAccountRoutes(group, services.Account)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
