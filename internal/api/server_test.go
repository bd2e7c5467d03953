package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"kanban/internal/app/config"
	"kanban/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAttempts(t *testing.T, cfg *config.Config, remoteAddr string, forwarded func(i int) string) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(cfg)
	require.NoError(t, err)
	router.POST("/api/users/login", middleware.NewRateLimiter(1, 1).Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	allowed := 0
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set("X-Forwarded-For", forwarded(i))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code == http.StatusOK {
			allowed++
		}
	}
	return allowed
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	rotating := func(i int) string { return fmt.Sprintf("198.51.100.%d", i+1) }

	allowed := loginAttempts(t, &config.Config{}, "203.0.113.7:40000", rotating)

	assert.Equal(t, 1, allowed)
}

func TestRateLimitHonoursTrustedProxy(t *testing.T) {
	rotating := func(i int) string { return fmt.Sprintf("198.51.100.%d", i+1) }
	cfg := &config.Config{TrustedProxies: []string{"10.0.0.1"}}

	// за доверенным прокси каждый клиент получает свой bucket
	allowed := loginAttempts(t, cfg, "10.0.0.1:40000", rotating)

	assert.Equal(t, 20, allowed)
}

func TestNewRouterRejectsBadProxy(t *testing.T) {
	_, err := NewRouter(&config.Config{TrustedProxies: []string{"not-an-ip"}})
	assert.Error(t, err)
}
