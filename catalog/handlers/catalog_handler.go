package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
	"github.com/gorilla/schema"

	serviceErrors "github.com/stablio/api/catalog/errors"
	"github.com/stablio/api/catalog/models"
	"github.com/stablio/api/catalog/services"
)

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// CatalogHandler serves the public list endpoints
type CatalogHandler struct {
	service *services.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *services.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// decodeListQuery parses the request's query string into a ListQuery.
func decodeListQuery(c *fiber.Ctx) (models.ListQuery, error) {
	values := url.Values{}
	for k, v := range c.Queries() {
		values.Set(k, v)
	}

	var q models.ListQuery
	if err := queryDecoder.Decode(&q, values); err != nil {
		return q, err
	}
	return q, nil
}

// ListResources handles GET /resources
func (h *CatalogHandler) ListResources(c *fiber.Ctx) error {
	q, err := decodeListQuery(c)
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.service.ListResources(c.UserContext(), q)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// ListStablecoins handles GET /stablecoins
func (h *CatalogHandler) ListStablecoins(c *fiber.Ctx) error {
	q, err := decodeListQuery(c)
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.service.ListStablecoins(c.UserContext(), q)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// GetStablecoin handles GET /stablecoins/:id
func (h *CatalogHandler) GetStablecoin(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return serviceErrors.HandleUUIDError(c, "stablecoin id")
	}

	coin, err := h.service.GetStablecoin(c.UserContext(), id)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(coin)
}

// ListExperts handles GET /experts
func (h *CatalogHandler) ListExperts(c *fiber.Ctx) error {
	q, err := decodeListQuery(c)
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.service.ListExperts(c.UserContext(), q)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// ListJobs handles GET /jobs
func (h *CatalogHandler) ListJobs(c *fiber.Ctx) error {
	q, err := decodeListQuery(c)
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.service.ListJobs(c.UserContext(), q)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// ListEvents handles GET /events
func (h *CatalogHandler) ListEvents(c *fiber.Ctx) error {
	q, err := decodeListQuery(c)
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.service.ListEvents(c.UserContext(), q)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// ListRegulations handles GET /regulations
func (h *CatalogHandler) ListRegulations(c *fiber.Ctx) error {
	q, err := decodeListQuery(c)
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid query parameters")
	}

	result, err := h.service.ListRegulations(c.UserContext(), q)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// Discover handles GET /resources/discover
func (h *CatalogHandler) Discover(c *fiber.Ctx) error {
	token := c.Query("token")
	offset := c.QueryInt("offset", 0)

	result, err := h.service.Discover(c.UserContext(), token, offset)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}
