package catalog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stablio/api/catalog/handlers"
)

type Handlers struct {
	CatalogHandler *handlers.CatalogHandler
}

// RegisterRoutes wires the public catalog endpoints. All reads are
// anonymous; bookmark state is resolved separately per item.
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	h := handlers.CatalogHandler

	app.Get("/resources", h.ListResources)
	app.Get("/resources/discover", h.Discover)

	app.Get("/stablecoins", h.ListStablecoins)
	app.Get("/stablecoins/:id", h.GetStablecoin)

	app.Get("/experts", h.ListExperts)
	app.Get("/jobs", h.ListJobs)
	app.Get("/events", h.ListEvents)
	app.Get("/regulations", h.ListRegulations)
}
