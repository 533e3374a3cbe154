// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"strings"

	serviceErrors "github.com/stablio/api/feedback/errors"
	"github.com/stablio/api/feedback/models"
	"github.com/stablio/api/feedback/repository"
)

// Service stores feedback messages from the public form.
type Service struct {
	repo repository.Repository
}

// NewService constructs a feedback service.
func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores a feedback message. Name and email are optional; an
// empty message is rejected.
func (s *Service) Submit(ctx context.Context, req models.CreateFeedbackRequest) (*models.Feedback, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", serviceErrors.ErrInvalidRequest)
	}

	feedback := &models.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: message,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("%w: %v", serviceErrors.ErrDatabaseOperation, err)
	}
	return feedback, nil
}
