package handlers

import (
	"github.com/gofiber/fiber/v2"

	serviceErrors "github.com/stablio/api/feedback/errors"
	"github.com/stablio/api/feedback/models"
	"github.com/stablio/api/feedback/services"
)

// FeedbackHandler serves the public feedback form.
type FeedbackHandler struct {
	service *services.Service
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service *services.Service) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit handles POST /feedback
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req models.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return serviceErrors.HandleValidationError(c, "Invalid request body")
	}

	feedback, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		return serviceErrors.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}
