package services

import (
	"context"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/stablio/api/bookmarks/repository"
	catalogModels "github.com/stablio/api/catalog/models"
)

// MockRepository is a testify mock of repository.Repository for service tests.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) AddBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) RemoveBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetMapByUserAndResources(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, resourceIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

func (m *MockRepository) FindMyBookmarks(ctx context.Context, userID uuid.UUID) ([]repository.BookmarkEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookmarkEntry), args.Error(1)
}

// MockResourceProvider is a testify mock of the catalog hydration surface.
type MockResourceProvider struct {
	mock.Mock
}

func (m *MockResourceProvider) FindResourcesByIDs(ctx context.Context, ids []uuid.UUID) ([]catalogModels.Resource, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogModels.Resource), args.Error(1)
}
