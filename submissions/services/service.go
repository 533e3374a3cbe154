// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"

	catalogModels "github.com/stablio/api/catalog/models"
	"github.com/stablio/api/internal/pkg/log"
	"github.com/stablio/api/internal/types"
	serviceErrors "github.com/stablio/api/submissions/errors"
	"github.com/stablio/api/submissions/models"
	"github.com/stablio/api/submissions/repository"
)

// resourcePublisher is the catalog surface approvals publish through.
type resourcePublisher interface {
	CreateResource(ctx context.Context, resource *catalogModels.Resource) error
}

// Service owns the submission lifecycle: create pending, list the queue,
// approve (publish + status flip) and reject (status flip).
type Service struct {
	repo      repository.Repository
	publisher resourcePublisher
}

// NewService constructs a submission service.
func NewService(repo repository.Repository, publisher resourcePublisher) *Service {
	return &Service{repo: repo, publisher: publisher}
}

// Submit stores a new pending submission for the authenticated user.
func (s *Service) Submit(ctx context.Context, user types.UserContext, req models.CreateSubmissionRequest) (*models.Submission, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: title and url are required", serviceErrors.ErrInvalidRequest)
	}

	submission := &models.Submission{
		Title:          strings.TrimSpace(req.Title),
		Description:    strings.TrimSpace(req.Description),
		Type:           req.Type,
		Audience:       req.Audience,
		URL:            strings.TrimSpace(req.URL),
		ImageURL:       strings.TrimSpace(req.ImageURL),
		Topics:         pq.StringArray(req.Topics),
		SubmitterID:    user.UserID,
		SubmitterEmail: user.Email,
		Status:         models.StatusPending,
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	return submission, nil
}

// ListPending returns the moderation queue, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]models.Submission, error) {
	submissions, err := s.repo.FindByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	if submissions == nil {
		submissions = []models.Submission{}
	}
	return submissions, nil
}

// Approve publishes the submission into the resources collection, then
// flips its status. The two writes share no transaction: a failure after
// the publish leaves the submission pending with the resource already
// live, and a retry publishes a second copy.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", serviceErrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	if submission.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", serviceErrors.ErrAlreadyReviewed, submission.Status)
	}

	resource := &catalogModels.Resource{
		Title:       submission.Title,
		Description: submission.Description,
		Type:        submission.Type,
		Audience:    submission.Audience,
		URL:         submission.URL,
		ImageURL:    submission.ImageURL,
		Tags:        submission.Topics,
	}
	if err := s.publisher.CreateResource(ctx, resource); err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}

	flipped, err := s.repo.UpdateStatus(ctx, id, models.StatusPending, models.StatusApproved)
	if err != nil {
		log.ErrorWithContext(ctx, "[Submissions] resource %s published but submission %s still pending: %v",
			resource.ID, id, err)
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	if !flipped {
		return nil, fmt.Errorf("%w: reviewed concurrently", serviceErrors.ErrAlreadyReviewed)
	}

	submission.Status = models.StatusApproved
	return submission, nil
}

// Reject flips a pending submission to rejected.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", serviceErrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	if submission.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", serviceErrors.ErrAlreadyReviewed, submission.Status)
	}

	flipped, err := s.repo.UpdateStatus(ctx, id, models.StatusPending, models.StatusRejected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	if !flipped {
		return nil, fmt.Errorf("%w: reviewed concurrently", serviceErrors.ErrAlreadyReviewed)
	}

	submission.Status = models.StatusRejected
	return submission, nil
}
