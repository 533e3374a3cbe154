package admin

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/stablio/api/internal/types"
)

type Config struct {
	UserCtxName string
	// HasAccess decides whether the authenticated user is an admin.
	// Admin status lives in the admins table, not in the token, so the
	// check is a lookup rather than a role claim comparison.
	HasAccess func(ctx context.Context, u types.UserContext) (bool, error)
}

func New(config Config) fiber.Handler {
	userKey := config.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "missing user context",
			})
		}
		if config.HasAccess != nil {
			allowed, err := config.HasAccess(c.UserContext(), user)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"code":    "INTERNAL_ERROR",
					"message": "failed to verify admin access",
				})
			}
			if !allowed {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"code":    "FORBIDDEN",
					"message": "admin access required",
				})
			}
			return c.Next()
		}
		// Fallback: require system role 'admin' from the token claim.
		if user.SystemRole != types.AdminRole {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "FORBIDDEN",
				"message": "admin access required",
			})
		}
		return c.Next()
	}
}
