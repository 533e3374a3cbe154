package services

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"

	catalogModels "github.com/stablio/api/catalog/models"
	"github.com/stablio/api/submissions/models"
)

// MockRepository is a testify mock of repository.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, submission *models.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockRepository) FindByStatus(ctx context.Context, status string) ([]models.Submission, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Submission), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error) {
	args := m.Called(ctx, id, fromStatus, toStatus)
	return args.Bool(0), args.Error(1)
}

// MockPublisher is a testify mock of the catalog publish surface.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) CreateResource(ctx context.Context, resource *catalogModels.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}
