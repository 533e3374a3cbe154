package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"

	"github.com/stablio/api/submissions/models"
)

// ErrNotFound is returned when no submission matches the given id.
var ErrNotFound = errors.New("submission not found")

// Repository is the store for moderation-queue submissions.
type Repository interface {
	Create(ctx context.Context, submission *models.Submission) error

	// FindByStatus returns submissions in the given status, oldest first
	// so the queue is reviewed in arrival order.
	FindByStatus(ctx context.Context, status string) ([]models.Submission, error)

	// GetByID returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)

	// UpdateStatus flips a submission from fromStatus to toStatus;
	// returns false when the row was missing or not in fromStatus.
	UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error)
}
