// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"sync"

	uuid "github.com/gofrs/uuid"

	"github.com/stablio/api/bookmarks/repository"
	catalogModels "github.com/stablio/api/catalog/models"
	"github.com/stablio/api/internal/pkg/log"
	"github.com/stablio/api/internal/utils"
)

// Service defines bookmark operations.
type Service interface {
	// ToggleBookmark flips bookmark state; returns true when bookmarked after the call.
	ToggleBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)

	// GetStatus reports whether the pair is bookmarked. Lookup failures
	// degrade to not-bookmarked rather than erroring the page.
	GetStatus(ctx context.Context, userID, resourceID uuid.UUID) bool

	// GetStatusMap resolves bookmark state for a batch of resources.
	GetStatusMap(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// ListBookmarks returns the user's bookmarked resources, hydrated and
	// served in a shuffled order.
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]catalogModels.Resource, error)
}

// resourceProvider captures the subset of the catalog we need to hydrate
// bookmark listings.
type resourceProvider interface {
	FindResourcesByIDs(ctx context.Context, ids []uuid.UUID) ([]catalogModels.Resource, error)
}

type pairLock struct {
	sync.Mutex
	refs int
}

type service struct {
	repo      repository.Repository
	resources resourceProvider

	// inflight serializes toggles per (user, resource) pair so a
	// double-click cannot race its own first request. Entries are
	// reference counted and removed once the last holder releases, so
	// the map never outgrows the toggles actually in flight.
	mu       sync.Mutex
	inflight map[string]*pairLock
}

// NewService constructs a bookmark service.
func NewService(repo repository.Repository, resources resourceProvider) Service {
	return &service{
		repo:      repo,
		resources: resources,
		inflight:  make(map[string]*pairLock),
	}
}

// lockPair acquires the pair's mutex and returns its release func.
func (s *service) lockPair(userID, resourceID uuid.UUID) func() {
	key := userID.String() + ":" + resourceID.String()

	s.mu.Lock()
	lock, ok := s.inflight[key]
	if !ok {
		lock = &pairLock{}
		s.inflight[key] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.Lock()
	return func() {
		lock.Unlock()
		s.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
	}
}

func (s *service) ToggleBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	if s.repo == nil {
		return false, fmt.Errorf("bookmark repository is not configured")
	}

	release := s.lockPair(userID, resourceID)
	defer release()

	created, err := s.repo.AddBookmark(ctx, userID, resourceID)
	if err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}
	if created {
		return true, nil
	}

	// Already existed; remove to toggle off.
	_, err = s.repo.RemoveBookmark(ctx, userID, resourceID)
	if err != nil {
		return false, fmt.Errorf("remove bookmark: %w", err)
	}
	return false, nil
}

func (s *service) GetStatus(ctx context.Context, userID, resourceID uuid.UUID) bool {
	bookmarked, err := s.repo.Exists(ctx, userID, resourceID)
	if err != nil {
		log.WarnWithContext(ctx, "[Bookmarks] status lookup failed for user %s resource %s: %v",
			userID, resourceID, err)
		return false
	}
	return bookmarked
}

func (s *service) GetStatusMap(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	statuses, err := s.repo.GetMapByUserAndResources(ctx, userID, resourceIDs)
	if err != nil {
		return nil, fmt.Errorf("get bookmark map: %w", err)
	}
	return statuses, nil
}

func (s *service) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]catalogModels.Resource, error) {
	if s.repo == nil || s.resources == nil {
		return nil, fmt.Errorf("bookmark service dependencies are not configured")
	}

	entries, err := s.repo.FindMyBookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find bookmarks: %w", err)
	}
	if len(entries) == 0 {
		return []catalogModels.Resource{}, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ResourceID)
	}

	resources, err := s.resources.FindResourcesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get resources: %w", err)
	}

	// A resource deleted after being bookmarked just drops out.
	utils.Shuffle(resources, nil)
	return resources, nil
}
