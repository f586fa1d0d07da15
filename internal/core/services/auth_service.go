package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_onboarding_app/internal/apperrors"
	portssvc "github.com/SscSPs/bank_onboarding_app/internal/core/ports/services"
	"github.com/SscSPs/bank_onboarding_app/internal/platform/config"
	"github.com/SscSPs/bank_onboarding_app/internal/utils"
)

// authService authenticates the single configured back-office operator.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{cfg: cfg}
}

// Login checks the username and the bcrypt password hash from config, then
// issues an access token whose subject is the operator username.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.OperatorUsername)) == 1
	passOK := utils.CheckPasswordHash(password, s.cfg.OperatorPasswordHash)
	if !userOK || !passOK {
		s.LogWarn(ctx, "Operator login failed")
		return "", time.Time{}, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, err
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("operator", username))
	return token, expiresAt, nil
}
