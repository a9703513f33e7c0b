package middleware

import (
	"reservation-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SecurityHeaders(cfg config.SecurityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Security-Policy", cfg.ContentSecurityPolicy)
		c.Header("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
		c.Header("Cross-Origin-Embedder-Policy", cfg.CrossOriginEmbedderPolicy)
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
