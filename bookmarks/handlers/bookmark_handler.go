package handlers

import (
	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	serviceErrors "github.com/stablio/api/bookmarks/errors"
	"github.com/stablio/api/bookmarks/services"
	"github.com/stablio/api/internal/types"
)

// BookmarkHandler serves bookmark endpoints
type BookmarkHandler struct {
	service services.Service
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(service services.Service) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// currentUser reads the authenticated identity; the bool is false for
// anonymous requests.
func currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return user, ok
}

// Toggle handles POST /bookmarks/:resourceId/toggle. Anonymous callers
// are rejected with a redirect signal before any write is attempted.
func (h *BookmarkHandler) Toggle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return serviceErrors.HandleAuthRequired(c)
	}

	resourceID, err := uuid.FromString(c.Params("resourceId"))
	if err != nil {
		return serviceErrors.HandleUUIDError(c, "resourceId")
	}

	bookmarked, err := h.service.ToggleBookmark(c.UserContext(), user.UserID, resourceID)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"isBookmarked": bookmarked})
}

// Status handles GET /bookmarks/:resourceId/status. Anonymous callers
// simply see not-bookmarked.
func (h *BookmarkHandler) Status(c *fiber.Ctx) error {
	resourceID, err := uuid.FromString(c.Params("resourceId"))
	if err != nil {
		return serviceErrors.HandleUUIDError(c, "resourceId")
	}

	user, ok := currentUser(c)
	if !ok {
		return c.JSON(fiber.Map{"isBookmarked": false})
	}

	return c.JSON(fiber.Map{
		"isBookmarked": h.service.GetStatus(c.UserContext(), user.UserID, resourceID),
	})
}

// List handles GET /bookmarks
func (h *BookmarkHandler) List(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return serviceErrors.HandleAuthRequired(c)
	}

	resources, err := h.service.ListBookmarks(c.UserContext(), user.UserID)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"items": resources})
}
