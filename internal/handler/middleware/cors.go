package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"reservation-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HeaderNotificationStatus is set to "failed" when a write succeeded but the guest email did not go out.
const HeaderNotificationStatus = "X-Notification-Status"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposeHeaders(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

// exposeHeaders always lets browser clients read the delivery status header.
func exposeHeaders(configured []string) []string {
	out := slices.Clone(configured)
	if !slices.ContainsFunc(out, func(h string) bool {
		return strings.EqualFold(h, HeaderNotificationStatus)
	}) {
		out = append(out, HeaderNotificationStatus)
	}
	return out
}
