package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	serviceErrors "github.com/stablio/api/auth/errors"
	"github.com/stablio/api/auth/models"
	"github.com/stablio/api/auth/services"
	"github.com/stablio/api/internal/types"
)

// AuthHandler serves signup, login, signout and the session read.
type AuthHandler struct {
	service *services.Service
	secure  bool
}

// NewAuthHandler creates an auth handler; secure marks the session
// cookie Secure for deployments behind TLS.
func NewAuthHandler(service *services.Service, secure bool) *AuthHandler {
	return &AuthHandler{service: service, secure: secure}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid request body")
	}
	if req.Email == "" {
		return serviceErrors.HandleMissingFieldError(c, "email")
	}
	if req.Password == "" {
		return serviceErrors.HandleMissingFieldError(c, "password")
	}

	session, err := h.service.Signup(c.UserContext(), req)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}

	h.setSessionCookie(c, session.AccessToken)
	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid request body")
	}
	if req.Email == "" {
		return serviceErrors.HandleMissingFieldError(c, "email")
	}
	if req.Password == "" {
		return serviceErrors.HandleMissingFieldError(c, "password")
	}

	session, err := h.service.Login(c.UserContext(), req)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}

	h.setSessionCookie(c, session.AccessToken)
	return c.JSON(session)
}

// Signout handles POST /auth/signout
func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     types.AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

// Session handles GET /auth/session. Anonymous callers get a null
// session rather than an error.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return c.JSON(fiber.Map{"session": nil})
	}
	return c.JSON(fiber.Map{"session": h.service.Session(c.UserContext(), user)})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     types.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
