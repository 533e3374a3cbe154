package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"

	"github.com/stablio/api/internal/types"
	serviceErrors "github.com/stablio/api/submissions/errors"
	"github.com/stablio/api/submissions/models"
	"github.com/stablio/api/submissions/services"
)

// SubmissionHandler serves the submission and moderation endpoints
type SubmissionHandler struct {
	service *services.Service
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(service *services.Service) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Submit handles POST /submissions
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	user, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok {
		return serviceErrors.HandleServiceError(c, serviceErrors.ErrMissingUserContext)
	}

	var req models.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid request body")
	}

	submission, err := h.service.Submit(c.UserContext(), user, req)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submission)
}

// ListPending handles GET /admin/submissions
func (h *SubmissionHandler) ListPending(c *fiber.Ctx) error {
	submissions, err := h.service.ListPending(c.UserContext())
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"items": submissions})
}

// Approve handles POST /admin/submissions/:id/approve
func (h *SubmissionHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid submission id")
	}

	submission, err := h.service.Approve(c.UserContext(), id)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(submission)
}

// Reject handles POST /admin/submissions/:id/reject
func (h *SubmissionHandler) Reject(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid submission id")
	}

	submission, err := h.service.Reject(c.UserContext(), id)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.JSON(submission)
}
