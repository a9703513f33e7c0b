package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"reservation-service/internal/domain/staff"
	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMode string

const (
	// AuthDisabled leaves every route open.
	AuthDisabled AuthMode = "disabled"
	// AuthOptional reads a bearer token when present but never rejects.
	AuthOptional AuthMode = "optional"
	AuthRequired AuthMode = "required"
)

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	mode           AuthMode
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.AuthConfig) (*AuthMiddleware, error) {
	mode, err := ParseAuthMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	if mode == AuthDisabled {
		slog.Warn("Authentication is disabled; reservation management routes are open", "auth_mode", mode)
	}
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		mode:           mode,
	}, nil
}

func ParseAuthMode(s string) (AuthMode, error) {
	switch m := AuthMode(strings.ToLower(strings.TrimSpace(s))); m {
	case AuthDisabled, AuthOptional, AuthRequired:
		return m, nil
	case "":
		return AuthDisabled, nil
	default:
		return "", fmt.Errorf("unknown AUTH_MODE %q", s)
	}
}

// RequireAuth enforces a valid bearer token only in required mode.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch m.mode {
		case AuthDisabled:
			c.Next()
			return
		case AuthOptional:
			m.authenticate(c)
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		if !m.authenticateToken(c, token) {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Invalid or expired token", nil)
			return
		}
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth. Outside required mode it only passes through.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.mode != AuthRequired {
			c.Next()
			return
		}

		role, ok := GetStaffRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		m.authenticateToken(c, token)
	}
}

func (m *AuthMiddleware) authenticateToken(c *gin.Context, token string) bool {
	staffID, role, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		slog.Warn("Token validation failed in auth middleware", "error", err.Error())
		return false
	}

	c.Set(ctxStaffIDKey, staffID)
	c.Set(ctxStaffRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"staff_id": staffID,
		"role":     string(role),
	})
	return true
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetStaffID(c *gin.Context) (string, bool) {
	staffID, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return "", false
	}

	id, ok := staffID.(string)
	return id, ok
}

func GetStaffRole(c *gin.Context) (staff.Role, bool) {
	staffRole, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}

	role, ok := staffRole.(staff.Role)
	return role, ok
}
