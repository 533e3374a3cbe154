package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"

	"github.com/stablio/api/catalog/models"
)

// ErrNotFound is returned when a single-record lookup matches no row.
var ErrNotFound = errors.New("record not found")

// CatalogRepository is the query surface over the published collections.
// Every Find method applies the same predicate shape: structured filters
// ANDed together, the committed search text ILIKE-matched across the
// collection's search fields with OR, newest first, offset+limit window.
type CatalogRepository interface {
	FindResources(ctx context.Context, q models.ListQuery) ([]models.Resource, error)
	FindStablecoins(ctx context.Context, q models.ListQuery) ([]models.Stablecoin, error)
	FindExperts(ctx context.Context, q models.ListQuery) ([]models.Expert, error)
	FindJobs(ctx context.Context, q models.ListQuery) ([]models.Job, error)
	FindEvents(ctx context.Context, q models.ListQuery) ([]models.Event, error)
	FindRegulations(ctx context.Context, q models.ListQuery) ([]models.Regulation, error)

	// GetStablecoin returns ErrNotFound when no row matches.
	GetStablecoin(ctx context.Context, id uuid.UUID) (*models.Stablecoin, error)

	// FindResourcesByIDs returns the matching rows in unspecified order;
	// callers that care about order re-sort against their own id sequence.
	FindResourcesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Resource, error)

	// CreateResource publishes a new resource row.
	CreateResource(ctx context.Context, resource *models.Resource) error
}
