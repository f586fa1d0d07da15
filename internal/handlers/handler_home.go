package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
	"github.com/SscSPs/bank_onboarding_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Bank Onboarding API"
	serviceVersion = "1.1.0"

	healthCheckTimeout = 2 * time.Second
)

type homeHandler struct {
	healthService portssvc.HealthSvc
	now           func() time.Time
}

func registerHomeRoutes(api *gin.RouterGroup, healthService portssvc.HealthSvc) {
	h := &homeHandler{healthService: healthService, now: time.Now}
	api.GET("/health", h.getHealth)
	api.GET("/", h.getHome)
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports liveness and database reachability.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /health [get]
func (h *homeHandler) getHealth(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:    "ok",
		Message:   "Server is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   serviceVersion,
		Database:  "up",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()
	if err := h.healthService.CheckDatabase(ctx); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Database health check failed", slog.String("error", err.Error()))
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getHome godoc
// @Summary Service information.
// @Description Welcome message and an index of the available routes.
// @Tags root
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func (h *homeHandler) getHome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Message: "Welcome to " + serviceName,
		Version: serviceVersion,
		Endpoints: map[string]string{
			"health":    "/api/health",
			"customers": "/api/customers",
			"accounts":  "/api/accounts",
		},
	})
}
