package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/dto"
	"github.com/SscSPs/bank_onboarding_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loginRate is the per-IP limit on login attempts.
const loginRate = "5-M"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the login route behind its own rate limit.
func registerAuthRoutes(api *gin.RouterGroup, authService portssvc.AuthSvc) error {
	h := NewAuthHandler(authService)

	ipLimiter, err := middleware.NewMemoryLimiter(loginRate)
	if err != nil {
		return err
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.GinMiddlewarize(ipLimiter), h.Login)
	}
	return nil
}

// Login godoc
// @Summary Operator login
// @Description Authenticates the back-office operator and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
