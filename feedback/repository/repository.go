package repository

import (
	"context"

	"github.com/stablio/api/feedback/models"
)

// Repository stores feedback messages.
type Repository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
}
