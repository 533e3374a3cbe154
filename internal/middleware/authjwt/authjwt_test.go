package authjwt

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablio/api/internal/testutil"
	"github.com/stablio/api/internal/types"
)

func newProtectedApp(t *testing.T, optional bool) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(New(Config{PublicKey: testutil.TestPublicKey, Optional: optional}))
	app.Get("/me", func(c *fiber.Ctx) error {
		user, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return c.JSON(fiber.Map{"anonymous": true})
		}
		return c.JSON(fiber.Map{"email": user.Email})
	})
	return app
}

func TestAuthJWT_BearerHeader(t *testing.T) {
	app := newProtectedApp(t, false)
	user := testutil.NewTestUser("user@example.com")

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(types.HeaderAuthorization, testutil.BearerHeader(testutil.SignTestToken(t, user)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWT_Cookie(t *testing.T) {
	app := newProtectedApp(t, false)
	user := testutil.NewTestUser("user@example.com")

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: testutil.SignTestToken(t, user)})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWT_MissingToken(t *testing.T) {
	app := newProtectedApp(t, false)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthJWT_OptionalPassesAnonymous(t *testing.T) {
	app := newProtectedApp(t, true)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWT_GarbageToken(t *testing.T) {
	app := newProtectedApp(t, false)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(types.HeaderAuthorization, types.BearerPrefix+"not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
