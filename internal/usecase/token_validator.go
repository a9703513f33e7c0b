package usecase

import (
	"reservation-service/internal/domain/staff"
	"reservation-service/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (string, staff.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken fails with jwt.ErrMissingKey when no secret was configured.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, staff.Role, error) {
	if t.jwtService == nil {
		return "", "", jwt.ErrMissingKey
	}
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return "", "", err
	}

	return claims.Subject, role, nil
}
