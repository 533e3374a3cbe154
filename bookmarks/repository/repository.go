package repository

import (
	"context"
	"time"

	uuid "github.com/gofrs/uuid"
)

// BookmarkEntry is one (user, resource) bookmark row.
type BookmarkEntry struct {
	ResourceID uuid.UUID `db:"resource_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repository is the store for resource bookmarks. At most one row exists
// per (user, resource); the insert is guarded at the database so races
// from concurrent clients cannot double-insert.
type Repository interface {
	// AddBookmark inserts the pair; returns false when it already existed.
	AddBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)

	// RemoveBookmark deletes the pair; returns false when nothing was there.
	RemoveBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)

	// Exists reports whether the pair is bookmarked.
	Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)

	// GetMapByUserAndResources resolves bookmark state for a batch of
	// resources; every requested id is present in the result.
	GetMapByUserAndResources(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// FindMyBookmarks returns all of the user's bookmark rows, newest first.
	FindMyBookmarks(ctx context.Context, userID uuid.UUID) ([]BookmarkEntry, error)
}
