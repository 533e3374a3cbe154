package submissions

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/stablio/api/internal/middleware/admin"
	"github.com/stablio/api/internal/middleware/authjwt"
	"github.com/stablio/api/internal/middleware/ratelimit"
	platformconfig "github.com/stablio/api/internal/platform/config"
	"github.com/stablio/api/internal/types"
	"github.com/stablio/api/submissions/handlers"
)

type Handlers struct {
	SubmissionHandler *handlers.SubmissionHandler
}

// AdminCheck resolves whether a user may review submissions.
type AdminCheck func(ctx context.Context, u types.UserContext) (bool, error)

// RegisterRoutes wires submission endpoints: an authenticated submit
// surface and an admin-gated moderation queue.
func RegisterRoutes(app *fiber.App, handlers *Handlers, cfg *platformconfig.Config, isAdmin AdminCheck) {
	authMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})
	adminMiddleware := admin.New(admin.Config{
		HasAccess: isAdmin,
	})

	limits := ratelimit.DefaultEndpointLimits()
	if cfg.RateLimits.Submission.Max > 0 {
		limits.SubmissionMaxRequests = cfg.RateLimits.Submission.Max
		limits.SubmissionWindowDuration = cfg.RateLimits.Submission.Duration
	}
	submit := []fiber.Handler{handlers.SubmissionHandler.Submit}
	if cfg.RateLimits.Submission.Enabled {
		submit = append([]fiber.Handler{ratelimit.NewSubmissionLimiter(&limits)}, submit...)
	}

	group := app.Group("/submissions", authMiddleware)
	group.Post("/", submit...)

	adminGroup := app.Group("/admin/submissions", authMiddleware, adminMiddleware)
	adminGroup.Get("/", handlers.SubmissionHandler.ListPending)
	adminGroup.Post("/:id/approve", handlers.SubmissionHandler.Approve)
	adminGroup.Post("/:id/reject", handlers.SubmissionHandler.Reject)
}
