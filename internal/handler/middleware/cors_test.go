//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reservation-service/internal/handler/middleware"
	"reservation-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().CORS

	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/api/reservations", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin can read the delivery status header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), middleware.HeaderNotificationStatus)
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
