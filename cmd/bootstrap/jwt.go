package bootstrap

import (
	"errors"

	"reservation-service/internal/handler/middleware"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// NewJWTService returns a nil service when no secret is set and auth is disabled.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	service, err := jwt.NewService(cfg.JWT.Secret)
	if err == nil {
		return service, nil
	}
	mode, modeErr := middleware.ParseAuthMode(cfg.Auth.Mode)
	if modeErr != nil {
		return nil, modeErr
	}
	if errors.Is(err, jwt.ErrMissingKey) && mode == middleware.AuthDisabled {
		return nil, nil
	}
	return nil, errors.New("JWT_SECRET is required unless AUTH_MODE=disabled")
}
