package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stablio/api/feedback/models"
)

// MockRepository is a testify mock of repository.Repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}
