package feedback

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stablio/api/feedback/handlers"
	"github.com/stablio/api/internal/middleware/ratelimit"
	platformconfig "github.com/stablio/api/internal/platform/config"
)

type Handlers struct {
	FeedbackHandler *handlers.FeedbackHandler
}

// RegisterRoutes wires the public feedback endpoint, rate limited per IP.
func RegisterRoutes(app *fiber.App, handlers *Handlers, cfg *platformconfig.Config) {
	limits := ratelimit.DefaultEndpointLimits()
	if cfg.RateLimits.Feedback.Max > 0 {
		limits.FeedbackMaxRequests = cfg.RateLimits.Feedback.Max
		limits.FeedbackWindowDuration = cfg.RateLimits.Feedback.Duration
	}
	submit := []fiber.Handler{handlers.FeedbackHandler.Submit}
	if cfg.RateLimits.Feedback.Enabled {
		submit = append([]fiber.Handler{ratelimit.NewFeedbackLimiter(&limits)}, submit...)
	}

	app.Post("/feedback", submit...)
}
