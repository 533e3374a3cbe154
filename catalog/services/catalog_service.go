// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"github.com/stablio/api/catalog/controller"
	serviceErrors "github.com/stablio/api/catalog/errors"
	"github.com/stablio/api/catalog/models"
	"github.com/stablio/api/catalog/repository"
	"github.com/stablio/api/internal/cache"
	platformconfig "github.com/stablio/api/internal/platform/config"
)

// discoverTTL bounds how long a shuffled snapshot order stays pageable.
const discoverTTL = 1 * time.Hour

// ListResult is one page of a collection plus the termination signal:
// HasMore is true exactly when the page came back full.
type ListResult[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"hasMore"`
}

// DiscoverResult is one slice of a shuffled snapshot. The token keys the
// server-held permutation so later slices page the same order.
type DiscoverResult struct {
	Items   []models.Resource `json:"items"`
	HasMore bool              `json:"hasMore"`
	Token   string            `json:"token"`
}

// Service serves the six published collections through one shared query
// path, plus the randomized discover feed.
type Service struct {
	repo          repository.CatalogRepository
	cache         *cache.Service
	pageSize      int
	discoverLimit int
}

// NewService creates a catalog service
func NewService(repo repository.CatalogRepository, cacheService *cache.Service, appConfig *platformconfig.AppConfig) *Service {
	return &Service{
		repo:          repo,
		cache:         cacheService,
		pageSize:      appConfig.PageSize,
		discoverLimit: appConfig.DiscoverSnapshotLimit,
	}
}

// PageSize exposes the fixed page size for handlers and tests.
func (s *Service) PageSize() int { return s.pageSize }

func listPage[T any](items []T, limit int, err error) (*ListResult[T], error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	if items == nil {
		items = []T{}
	}
	return &ListResult[T]{
		Items:   items,
		HasMore: len(items) == limit,
	}, nil
}

// ListResources returns one page of published resources
func (s *Service) ListResources(ctx context.Context, q models.ListQuery) (*ListResult[models.Resource], error) {
	q.Normalize(s.pageSize)
	items, err := s.repo.FindResources(ctx, q)
	return listPage(items, q.Limit, err)
}

// ListStablecoins returns one page of stablecoin profiles
func (s *Service) ListStablecoins(ctx context.Context, q models.ListQuery) (*ListResult[models.Stablecoin], error) {
	q.Normalize(s.pageSize)
	items, err := s.repo.FindStablecoins(ctx, q)
	return listPage(items, q.Limit, err)
}

// ListExperts returns one page of listed experts
func (s *Service) ListExperts(ctx context.Context, q models.ListQuery) (*ListResult[models.Expert], error) {
	q.Normalize(s.pageSize)
	items, err := s.repo.FindExperts(ctx, q)
	return listPage(items, q.Limit, err)
}

// ListJobs returns one page of job listings
func (s *Service) ListJobs(ctx context.Context, q models.ListQuery) (*ListResult[models.Job], error) {
	q.Normalize(s.pageSize)
	items, err := s.repo.FindJobs(ctx, q)
	return listPage(items, q.Limit, err)
}

// ListEvents returns one page of events
func (s *Service) ListEvents(ctx context.Context, q models.ListQuery) (*ListResult[models.Event], error) {
	q.Normalize(s.pageSize)
	items, err := s.repo.FindEvents(ctx, q)
	return listPage(items, q.Limit, err)
}

// ListRegulations returns one page of regulatory updates
func (s *Service) ListRegulations(ctx context.Context, q models.ListQuery) (*ListResult[models.Regulation], error) {
	q.Normalize(s.pageSize)
	items, err := s.repo.FindRegulations(ctx, q)
	return listPage(items, q.Limit, err)
}

// GetStablecoin returns one stablecoin profile
func (s *Service) GetStablecoin(ctx context.Context, id uuid.UUID) (*models.Stablecoin, error) {
	coin, err := s.repo.GetStablecoin(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: stablecoin %s", serviceErrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	return coin, nil
}

// Discover serves the randomized resource feed. On the first call (empty
// token) it takes a bounded snapshot, shuffles it once and parks the id
// order server-side under a fresh token; subsequent calls slice the same
// permutation at the requested offset so pages never overlap or repeat.
// With no cache store to hold the permutation, the first window is served
// without a token and without promising further pages.
func (s *Service) Discover(ctx context.Context, token string, offset int) (*DiscoverResult, error) {
	if token == "" {
		d := controller.NewDiscoverController(s.loadSnapshot, s.pageSize, s.discoverLimit, nil)
		items, hasMore, err := d.Window(ctx, offset)
		if err != nil {
			return nil, err
		}

		if !s.cache.IsEnabled() {
			return &DiscoverResult{Items: items, HasMore: false}, nil
		}

		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("failed to generate discover token: %w", err)
		}
		token = id.String()
		if err := s.cache.CacheData(ctx, discoverKey(token), d.Order(), discoverTTL); err != nil {
			return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
		}

		return &DiscoverResult{Items: items, HasMore: hasMore, Token: token}, nil
	}

	var order []string
	err := s.cache.GetCached(ctx, discoverKey(token), &order)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, serviceErrors.ErrDiscoverExpired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}

	d := controller.ResumeDiscoverController(order, s.hydrateResources, s.pageSize)
	items, hasMore, err := d.Window(ctx, offset)
	if err != nil {
		return nil, err
	}
	return &DiscoverResult{Items: items, HasMore: hasMore, Token: token}, nil
}

func (s *Service) loadSnapshot(ctx context.Context, limit int) ([]models.Resource, error) {
	items, err := s.repo.FindResources(ctx, models.ListQuery{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	return items, nil
}

// hydrateResources loads the rows behind one window of stored ids. Ids
// that no longer parse or resolve are left for the controller to drop.
func (s *Service) hydrateResources(ctx context.Context, raw []string) ([]models.Resource, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.FromString(value)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []models.Resource{}, nil
	}

	rows, err := s.repo.FindResourcesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	return rows, nil
}

func discoverKey(token string) string {
	return "discover:" + token
}
