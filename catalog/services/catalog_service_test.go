package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	serviceErrors "github.com/stablio/api/catalog/errors"
	"github.com/stablio/api/catalog/models"
	"github.com/stablio/api/catalog/repository"
	"github.com/stablio/api/internal/cache"
	platformconfig "github.com/stablio/api/internal/platform/config"
)

// mockCatalogRepository is a hand-written testify mock of CatalogRepository
type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) FindResources(ctx context.Context, q models.ListQuery) ([]models.Resource, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *mockCatalogRepository) FindStablecoins(ctx context.Context, q models.ListQuery) ([]models.Stablecoin, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stablecoin), args.Error(1)
}

func (m *mockCatalogRepository) FindExperts(ctx context.Context, q models.ListQuery) ([]models.Expert, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expert), args.Error(1)
}

func (m *mockCatalogRepository) FindJobs(ctx context.Context, q models.ListQuery) ([]models.Job, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *mockCatalogRepository) FindEvents(ctx context.Context, q models.ListQuery) ([]models.Event, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *mockCatalogRepository) FindRegulations(ctx context.Context, q models.ListQuery) ([]models.Regulation, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Regulation), args.Error(1)
}

func (m *mockCatalogRepository) GetStablecoin(ctx context.Context, id uuid.UUID) (*models.Stablecoin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stablecoin), args.Error(1)
}

func (m *mockCatalogRepository) FindResourcesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Resource, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *mockCatalogRepository) CreateResource(ctx context.Context, resource *models.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func testAppConfig() *platformconfig.AppConfig {
	return &platformconfig.AppConfig{PageSize: 9, DiscoverSnapshotLimit: 200}
}

func memoryCacheService(t *testing.T) *cache.Service {
	t.Helper()
	backend := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = backend.Close() })
	return cache.NewService(backend, cache.Config{Prefix: "test:"})
}

func makeResources(n int) []models.Resource {
	resources := make([]models.Resource, n)
	for i := range resources {
		id, _ := uuid.NewV4()
		resources[i] = models.Resource{ID: id, Title: "Resource"}
	}
	return resources
}

func TestListResources(t *testing.T) {
	t.Run("full page reports more", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.MatchedBy(func(q models.ListQuery) bool {
			return q.Limit == 9 && q.Offset == 0
		})).Return(makeResources(9), nil)

		result, err := svc.ListResources(context.Background(), models.ListQuery{})
		require.NoError(t, err)
		assert.Len(t, result.Items, 9)
		assert.True(t, result.HasMore)
		repo.AssertExpectations(t)
	})

	t.Run("short page is the final page", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.Anything).Return(makeResources(2), nil)

		result, err := svc.ListResources(context.Background(), models.ListQuery{Offset: 18})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
		assert.False(t, result.HasMore)
	})

	t.Run("empty page is a normal terminal state", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.Anything).Return([]models.Resource{}, nil)

		result, err := svc.ListResources(context.Background(), models.ListQuery{})
		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.False(t, result.HasMore)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := svc.ListResources(context.Background(), models.ListQuery{})
		require.ErrorIs(t, err, serviceErrors.ErrDatabaseOperation)
	})

	t.Run("All sentinel collapses to no filter", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.MatchedBy(func(q models.ListQuery) bool {
			return q.Type == ""
		})).Return([]models.Resource{}, nil)

		_, err := svc.ListResources(context.Background(), models.ListQuery{Type: "All"})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetStablecoin(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		id, _ := uuid.NewV4()
		repo.On("GetStablecoin", mock.Anything, id).Return(nil, repository.ErrNotFound)

		_, err := svc.GetStablecoin(context.Background(), id)
		require.ErrorIs(t, err, serviceErrors.ErrNotFound)
	})
}

func TestDiscover(t *testing.T) {
	t.Run("first call snapshots and pages", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		snapshot := makeResources(15)
		repo.On("FindResources", mock.Anything, mock.MatchedBy(func(q models.ListQuery) bool {
			return q.Limit == 200
		})).Return(snapshot, nil)
		repo.On("FindResourcesByIDs", mock.Anything, mock.Anything).Return(snapshot, nil)

		first, err := svc.Discover(context.Background(), "", 0)
		require.NoError(t, err)
		assert.Len(t, first.Items, 9)
		assert.True(t, first.HasMore)
		require.NotEmpty(t, first.Token)

		second, err := svc.Discover(context.Background(), first.Token, 9)
		require.NoError(t, err)
		assert.Len(t, second.Items, 6)
		assert.False(t, second.HasMore)
		assert.Equal(t, first.Token, second.Token)

		// The two slices partition the snapshot: no overlap, no repeats.
		seen := make(map[string]bool)
		for _, r := range append(first.Items, second.Items...) {
			require.Falsef(t, seen[r.ID.String()], "resource %s served twice", r.ID)
			seen[r.ID.String()] = true
		}
		assert.Len(t, seen, 15)
	})

	t.Run("no cache store serves one window without a token", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, cache.NewService(nil, cache.Config{}), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.Anything).Return(makeResources(15), nil)

		result, err := svc.Discover(context.Background(), "", 0)
		require.NoError(t, err)
		assert.Len(t, result.Items, 9)
		assert.False(t, result.HasMore, "no further pages can be promised without a stored order")
		assert.Empty(t, result.Token, "a token nothing stores must never be handed out")
	})

	t.Run("unknown token is expired", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		_, err := svc.Discover(context.Background(), "86e2dbb9-cb1b-4a03-b8f2-55e1f2dcd8a5", 9)
		require.ErrorIs(t, err, serviceErrors.ErrDiscoverExpired)
	})

	t.Run("snapshot fetch failure", func(t *testing.T) {
		repo := new(mockCatalogRepository)
		svc := NewService(repo, memoryCacheService(t), testAppConfig())

		repo.On("FindResources", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := svc.Discover(context.Background(), "", 0)
		require.ErrorIs(t, err, serviceErrors.ErrDatabaseOperation)
	})
}
