package bookmarks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stablio/api/bookmarks/handlers"
	"github.com/stablio/api/internal/middleware/authjwt"
	platformconfig "github.com/stablio/api/internal/platform/config"
)

type Handlers struct {
	BookmarkHandler *handlers.BookmarkHandler
}

// RegisterRoutes wires bookmark endpoints. Auth is optional at the
// middleware level: the toggle and listing handlers reject anonymous
// callers themselves with a redirect-to-auth signal, while status reads
// degrade to not-bookmarked.
func RegisterRoutes(app *fiber.App, handlers *Handlers, cfg *platformconfig.Config) {
	sessionMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
		Optional:  true,
	})

	group := app.Group("/bookmarks", sessionMiddleware)

	group.Post("/:resourceId/toggle", handlers.BookmarkHandler.Toggle)
	group.Get("/:resourceId/status", handlers.BookmarkHandler.Status)
	group.Get("/", handlers.BookmarkHandler.List)
}
