package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stablio/api/auth/handlers"
	"github.com/stablio/api/auth/repository"
	"github.com/stablio/api/auth/services"
	platformconfig "github.com/stablio/api/internal/platform/config"
	"github.com/stablio/api/internal/testutil"
)

func newAuthTestApp(t *testing.T, mutate func(cfg *platformconfig.Config)) *fiber.App {
	t.Helper()

	cfg := testutil.LoadTestConfig(t)
	if mutate != nil {
		mutate(cfg)
	}

	repo := new(services.MockRepository)
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

	app := fiber.New()
	RegisterRoutes(app, &Handlers{
		AuthHandler: handlers.NewAuthHandler(services.NewService(repo, cfg.JWT), false),
	}, cfg)
	return app
}

func postLogin(t *testing.T, app *fiber.App) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"user@example.com","password":"hunter2-hunter2"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestLoginRateLimitFlag(t *testing.T) {
	t.Run("enabled limit trips after max attempts", func(t *testing.T) {
		app := newAuthTestApp(t, func(cfg *platformconfig.Config) {
			cfg.RateLimits.Login.Enabled = true
			cfg.RateLimits.Login.Max = 1
		})

		assert.Equal(t, http.StatusUnauthorized, postLogin(t, app))
		assert.Equal(t, http.StatusTooManyRequests, postLogin(t, app))
	})

	t.Run("disabled limit never throttles", func(t *testing.T) {
		app := newAuthTestApp(t, func(cfg *platformconfig.Config) {
			cfg.RateLimits.Login.Enabled = false
			cfg.RateLimits.Login.Max = 1
		})

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusUnauthorized, postLogin(t, app))
		}
	})
}
