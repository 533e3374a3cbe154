package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stablio/api/auth/handlers"
	"github.com/stablio/api/internal/middleware/authjwt"
	"github.com/stablio/api/internal/middleware/ratelimit"
	platformconfig "github.com/stablio/api/internal/platform/config"
)

type Handlers struct {
	AuthHandler *handlers.AuthHandler
}

// RegisterRoutes wires the auth endpoints. Login and signup are rate
// limited per IP; the session read accepts anonymous callers.
func RegisterRoutes(app *fiber.App, handlers *Handlers, cfg *platformconfig.Config) {
	sessionMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
		Optional:  true,
	})

	limits := ratelimit.DefaultEndpointLimits()
	if cfg.RateLimits.Login.Max > 0 {
		limits.LoginMaxRequests = cfg.RateLimits.Login.Max
		limits.LoginWindowDuration = cfg.RateLimits.Login.Duration
	}
	if cfg.RateLimits.Signup.Max > 0 {
		limits.SignupMaxRequests = cfg.RateLimits.Signup.Max
		limits.SignupWindowDuration = cfg.RateLimits.Signup.Duration
	}

	signup := []fiber.Handler{handlers.AuthHandler.Signup}
	if cfg.RateLimits.Signup.Enabled {
		signup = append([]fiber.Handler{ratelimit.NewSignupLimiter(&limits)}, signup...)
	}
	login := []fiber.Handler{handlers.AuthHandler.Login}
	if cfg.RateLimits.Login.Enabled {
		login = append([]fiber.Handler{ratelimit.NewLoginLimiter(&limits)}, login...)
	}

	group := app.Group("/auth")
	group.Post("/signup", signup...)
	group.Post("/login", login...)
	group.Post("/signout", handlers.AuthHandler.Signout)
	group.Get("/session", sessionMiddleware, handlers.AuthHandler.Session)
}
