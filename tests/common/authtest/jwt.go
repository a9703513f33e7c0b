//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"reservation-service/internal/domain/staff"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	service, err := jwt.NewService(h.cfg.Secret)
	require.NoError(t, err)
	return service
}

func (h *JWTHelper) GenerateToken(t *testing.T, role staff.Role) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(uuid.NewString(), role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role staff.Role) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(uuid.NewString(), role, -time.Minute)
	require.NoError(t, err)
	return token
}
