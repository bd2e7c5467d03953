package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kanban/internal/app/config"
	"kanban/internal/app/handler"
	"kanban/internal/app/middleware"
	"kanban/internal/app/repository"
	"kanban/internal/app/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutesServesAPIAndDocs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo, err := repository.New(config.DriverSQLite, "file:pkg_app_test?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	cfg := &config.Config{ServiceHost: "127.0.0.1", ServicePort: 8080}
	tokens := token.NewService("pkg-test-secret-0123456789", time.Hour, "kanban")
	app := NewApp(
		cfg,
		gin.New(),
		handler.NewAPIHandler(repo, nil, handler.NewAuthHandler(repo, tokens, nil)),
		middleware.NewAuthMiddleware(repo, tokens, nil),
		middleware.NewRateLimiter(0, 1),
	)
	app.RegisterRoutes()

	for path, status := range map[string]int{
		"/ping":                  http.StatusOK,
		"/api_docs/doc.json":     http.StatusOK,
		"/api/users":             http.StatusUnauthorized,
		"/api/columns/1/cards":   http.StatusOK,
		"/api/comments/notanint": http.StatusBadRequest,
	} {
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code, path)
	}
}
