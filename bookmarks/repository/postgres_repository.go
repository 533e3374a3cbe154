package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/stablio/api/internal/database/postgres"
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a bookmark repository.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

func (r *postgresRepository) AddBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	// The unique constraint on (user_id, resource_id) plus the conflict
	// guard keeps concurrent tabs from double-inserting.
	query := `
		INSERT INTO resource_bookmarks (user_id, resource_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, userID, resourceID)
	if err != nil {
		return false, fmt.Errorf("insert bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *postgresRepository) RemoveBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM resource_bookmarks
		WHERE user_id = $1 AND resource_id = $2
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, userID, resourceID)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *postgresRepository) Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	query := `
		SELECT resource_id
		FROM resource_bookmarks
		WHERE user_id = $1 AND resource_id = $2
	`

	var found uuid.UUID
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &found, query, userID, resourceID)
	if err != nil {
		// Zero rows is the normal not-bookmarked state.
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get bookmark: %w", err)
	}
	return true, nil
}

func (r *postgresRepository) GetMapByUserAndResources(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(resourceIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}

	idStrings := make([]string, len(resourceIDs))
	for i, id := range resourceIDs {
		idStrings[i] = id.String()
	}

	query := `
		SELECT resource_id
		FROM resource_bookmarks
		WHERE user_id = $1 AND resource_id = ANY($2::uuid[])
	`

	var results []uuid.UUID
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &results, query, userID, pq.Array(idStrings)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return map[uuid.UUID]bool{}, nil
		}
		return nil, fmt.Errorf("get bookmark map: %w", err)
	}

	resultMap := make(map[uuid.UUID]bool, len(results))
	for _, id := range results {
		resultMap[id] = true
	}

	// Every requested ID is present so callers get a deterministic map.
	for _, id := range resourceIDs {
		if _, ok := resultMap[id]; !ok {
			resultMap[id] = false
		}
	}

	return resultMap, nil
}

func (r *postgresRepository) FindMyBookmarks(ctx context.Context, userID uuid.UUID) ([]BookmarkEntry, error) {
	query := `
		SELECT resource_id, created_at
		FROM resource_bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC, resource_id DESC
	`

	var rows []BookmarkEntry
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &rows, query, userID); err != nil {
		return nil, fmt.Errorf("find bookmarks: %w", err)
	}
	return rows, nil
}
