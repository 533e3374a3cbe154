package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogModels "github.com/stablio/api/catalog/models"
	"github.com/stablio/api/internal/types"
	serviceErrors "github.com/stablio/api/submissions/errors"
	"github.com/stablio/api/submissions/models"
	"github.com/stablio/api/submissions/repository"
)

func testUser(t *testing.T) types.UserContext {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return types.UserContext{UserID: id, Email: "user@example.com"}
}

func pendingSubmission(t *testing.T) *models.Submission {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return &models.Submission{
		ID:          id,
		Title:       "Stablecoin Risk Primer",
		Description: "An introduction to reserve risk",
		Type:        "Article",
		URL:         "https://example.com/primer",
		Status:      models.StatusPending,
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending submission", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(s *models.Submission) bool {
			return s.Status == models.StatusPending && s.Title == "Stablecoin Risk Primer"
		})).Return(nil)

		svc := NewService(repo, new(MockPublisher))
		submission, err := svc.Submit(ctx, testUser(t), models.CreateSubmissionRequest{
			Title: "Stablecoin Risk Primer",
			URL:   "https://example.com/primer",
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, submission.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejects missing title or url", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockPublisher))

		_, err := svc.Submit(ctx, testUser(t), models.CreateSubmissionRequest{URL: "https://example.com"})
		require.ErrorIs(t, err, serviceErrors.ErrInvalidRequest)

		_, err = svc.Submit(ctx, testUser(t), models.CreateSubmissionRequest{Title: "No link"})
		require.ErrorIs(t, err, serviceErrors.ErrInvalidRequest)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes then flips status", func(t *testing.T) {
		submission := pendingSubmission(t)
		repo := new(MockRepository)
		publisher := new(MockPublisher)

		repo.On("GetByID", ctx, submission.ID).Return(submission, nil)
		publisher.On("CreateResource", ctx, mock.MatchedBy(func(r *catalogModels.Resource) bool {
			return r.Title == submission.Title && r.URL == submission.URL
		})).Return(nil)
		repo.On("UpdateStatus", ctx, submission.ID, models.StatusPending, models.StatusApproved).Return(true, nil)

		svc := NewService(repo, publisher)
		approved, err := svc.Approve(ctx, submission.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, approved.Status)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("publish failure leaves status untouched", func(t *testing.T) {
		submission := pendingSubmission(t)
		repo := new(MockRepository)
		publisher := new(MockPublisher)

		repo.On("GetByID", ctx, submission.ID).Return(submission, nil)
		publisher.On("CreateResource", ctx, mock.Anything).Return(errors.New("connection refused"))

		svc := NewService(repo, publisher)
		_, err := svc.Approve(ctx, submission.ID)
		require.ErrorIs(t, err, serviceErrors.ErrDatabaseOperation)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("status flip failure still surfaces after publish", func(t *testing.T) {
		// The known two-step gap: the resource is live but the
		// submission stays pending.
		submission := pendingSubmission(t)
		repo := new(MockRepository)
		publisher := new(MockPublisher)

		repo.On("GetByID", ctx, submission.ID).Return(submission, nil)
		publisher.On("CreateResource", ctx, mock.Anything).Return(nil)
		repo.On("UpdateStatus", ctx, submission.ID, models.StatusPending, models.StatusApproved).
			Return(false, errors.New("connection refused"))

		svc := NewService(repo, publisher)
		_, err := svc.Approve(ctx, submission.ID)
		require.ErrorIs(t, err, serviceErrors.ErrDatabaseOperation)
		publisher.AssertExpectations(t)
	})

	t.Run("already reviewed", func(t *testing.T) {
		submission := pendingSubmission(t)
		submission.Status = models.StatusApproved
		repo := new(MockRepository)
		repo.On("GetByID", ctx, submission.ID).Return(submission, nil)

		svc := NewService(repo, new(MockPublisher))
		_, err := svc.Approve(ctx, submission.ID)
		require.ErrorIs(t, err, serviceErrors.ErrAlreadyReviewed)
	})

	t.Run("not found", func(t *testing.T) {
		id, _ := uuid.NewV4()
		repo := new(MockRepository)
		repo.On("GetByID", ctx, id).Return(nil, repository.ErrNotFound)

		svc := NewService(repo, new(MockPublisher))
		_, err := svc.Approve(ctx, id)
		require.ErrorIs(t, err, serviceErrors.ErrNotFound)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("flips status without publishing", func(t *testing.T) {
		submission := pendingSubmission(t)
		repo := new(MockRepository)
		publisher := new(MockPublisher)

		repo.On("GetByID", ctx, submission.ID).Return(submission, nil)
		repo.On("UpdateStatus", ctx, submission.ID, models.StatusPending, models.StatusRejected).Return(true, nil)

		svc := NewService(repo, publisher)
		rejected, err := svc.Reject(ctx, submission.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, rejected.Status)
		publisher.AssertNotCalled(t, "CreateResource", mock.Anything, mock.Anything)
	})

	t.Run("concurrent review loses", func(t *testing.T) {
		submission := pendingSubmission(t)
		repo := new(MockRepository)

		repo.On("GetByID", ctx, submission.ID).Return(submission, nil)
		repo.On("UpdateStatus", ctx, submission.ID, models.StatusPending, models.StatusRejected).Return(false, nil)

		svc := NewService(repo, new(MockPublisher))
		_, err := svc.Reject(ctx, submission.ID)
		require.ErrorIs(t, err, serviceErrors.ErrAlreadyReviewed)
	})
}

func TestListPending(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRepository)
	repo.On("FindByStatus", ctx, models.StatusPending).Return([]models.Submission{}, nil)

	svc := NewService(repo, new(MockPublisher))
	items, err := svc.ListPending(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
