// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/stablio/api/catalog/models"
	"github.com/stablio/api/internal/database/postgres"
)

// postgresRepository implements CatalogRepository using raw SQL queries
type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a new PostgreSQL repository for the catalog
func NewPostgresRepository(client *postgres.Client) CatalogRepository {
	return &postgresRepository{client: client}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// findSpec describes one collection's query shape for buildFindQuery.
type findSpec struct {
	table        string
	columns      string
	searchFields []string
	orderBy      string
}

// equalityFilter is an ANDed column = value predicate.
type equalityFilter struct {
	column string
	value  string
}

// buildFindQuery constructs a SELECT with the shared predicate shape:
// WHERE col = $n AND ... AND (field1 ILIKE $m OR field2 ILIKE $m)
// ORDER BY ... LIMIT/OFFSET.
func buildFindQuery(spec findSpec, filters []equalityFilter, search string, limit, offset int) (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1", spec.columns, spec.table)

	var args []interface{}
	argIndex := 1

	for _, f := range filters {
		if f.value == "" {
			continue
		}
		query += fmt.Sprintf(" AND %s = $%d", f.column, argIndex)
		args = append(args, f.value)
		argIndex++
	}

	if search != "" && len(spec.searchFields) > 0 {
		pattern := "%" + search + "%"
		query += " AND ("
		for i, field := range spec.searchFields {
			if i > 0 {
				query += " OR "
			}
			query += fmt.Sprintf("%s ILIKE $%d", field, argIndex)
		}
		query += ")"
		args = append(args, pattern)
		argIndex++
	}

	query += fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", spec.orderBy, argIndex, argIndex+1)
	args = append(args, limit, offset)

	return query, args
}

var resourceSpec = findSpec{
	table:        "resources",
	columns:      "id, title, description, type, audience, url, image_url, tags, created_at",
	searchFields: []string{"title", "description"},
	orderBy:      "created_at DESC",
}

// FindResources returns one page of published resources
func (r *postgresRepository) FindResources(ctx context.Context, q models.ListQuery) ([]models.Resource, error) {
	filters := []equalityFilter{
		{column: "type", value: q.Type},
		{column: "audience", value: q.Audience},
	}
	query, args := buildFindQuery(resourceSpec, filters, q.Search, q.Limit, q.Offset)

	var resources []models.Resource
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &resources, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find resources: %w", err)
	}
	return resources, nil
}

var stablecoinSpec = findSpec{
	table:        "stablecoins",
	columns:      "id, name, symbol, description, type, issuer, website_url, logo_url, created_at",
	searchFields: []string{"name", "description"},
	orderBy:      "created_at DESC",
}

// FindStablecoins returns one page of stablecoin profiles
func (r *postgresRepository) FindStablecoins(ctx context.Context, q models.ListQuery) ([]models.Stablecoin, error) {
	filters := []equalityFilter{
		{column: "type", value: q.Type},
	}
	query, args := buildFindQuery(stablecoinSpec, filters, q.Search, q.Limit, q.Offset)

	var coins []models.Stablecoin
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &coins, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find stablecoins: %w", err)
	}
	return coins, nil
}

var expertSpec = findSpec{
	table:        "experts",
	columns:      "id, name, title, bio, expertise, avatar_url, twitter_url, created_at",
	searchFields: []string{"name", "bio"},
	orderBy:      "created_at DESC",
}

// FindExperts returns one page of listed experts
func (r *postgresRepository) FindExperts(ctx context.Context, q models.ListQuery) ([]models.Expert, error) {
	filters := []equalityFilter{
		{column: "expertise", value: q.Type},
	}
	query, args := buildFindQuery(expertSpec, filters, q.Search, q.Limit, q.Offset)

	var experts []models.Expert
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &experts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find experts: %w", err)
	}
	return experts, nil
}

var jobSpec = findSpec{
	table:        "jobs",
	columns:      "id, title, company, location, type, description, apply_url, created_at",
	searchFields: []string{"title", "company"},
	orderBy:      "created_at DESC",
}

// FindJobs returns one page of job listings
func (r *postgresRepository) FindJobs(ctx context.Context, q models.ListQuery) ([]models.Job, error) {
	filters := []equalityFilter{
		{column: "type", value: q.Type},
		{column: "location", value: q.Location},
	}
	query, args := buildFindQuery(jobSpec, filters, q.Search, q.Limit, q.Offset)

	var jobs []models.Job
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &jobs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

var eventSpec = findSpec{
	table:        "events",
	columns:      "id, title, description, location, type, starts_at, website_url, created_at",
	searchFields: []string{"title", "description"},
	// Upcoming events first.
	orderBy: "starts_at ASC",
}

// FindEvents returns one page of events
func (r *postgresRepository) FindEvents(ctx context.Context, q models.ListQuery) ([]models.Event, error) {
	filters := []equalityFilter{
		{column: "type", value: q.Type},
		{column: "location", value: q.Location},
	}
	query, args := buildFindQuery(eventSpec, filters, q.Search, q.Limit, q.Offset)

	var events []models.Event
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &events, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}
	return events, nil
}

var regulationSpec = findSpec{
	table:        "regulations",
	columns:      "id, title, summary, region, status, source_url, created_at",
	searchFields: []string{"title", "summary"},
	orderBy:      "created_at DESC",
}

// FindRegulations returns one page of regulatory updates
func (r *postgresRepository) FindRegulations(ctx context.Context, q models.ListQuery) ([]models.Regulation, error) {
	filters := []equalityFilter{
		{column: "region", value: q.Region},
		{column: "status", value: q.Status},
	}
	query, args := buildFindQuery(regulationSpec, filters, q.Search, q.Limit, q.Offset)

	var regulations []models.Regulation
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &regulations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find regulations: %w", err)
	}
	return regulations, nil
}

// GetStablecoin retrieves a single stablecoin profile by ID
func (r *postgresRepository) GetStablecoin(ctx context.Context, id uuid.UUID) (*models.Stablecoin, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", stablecoinSpec.columns, stablecoinSpec.table)

	var coin models.Stablecoin
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &coin, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stablecoin: %w", err)
	}
	return &coin, nil
}

// FindResourcesByIDs retrieves resources matching the given IDs
func (r *postgresRepository) FindResourcesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Resource, error) {
	if len(ids) == 0 {
		return []models.Resource{}, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1)", resourceSpec.columns, resourceSpec.table)

	var resources []models.Resource
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &resources, query, pq.Array(idStrings))
	if err != nil {
		return nil, fmt.Errorf("failed to find resources by ids: %w", err)
	}
	return resources, nil
}

// CreateResource inserts a new published resource
func (r *postgresRepository) CreateResource(ctx context.Context, resource *models.Resource) error {
	if resource.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate resource id: %w", err)
		}
		resource.ID = id
	}
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = time.Now()
	}
	if resource.Tags == nil {
		resource.Tags = pq.StringArray{}
	}

	query := `
		INSERT INTO resources (id, title, description, type, audience, url, image_url, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query,
		resource.ID, resource.Title, resource.Description, resource.Type,
		resource.Audience, resource.URL, resource.ImageURL, resource.Tags, resource.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}
