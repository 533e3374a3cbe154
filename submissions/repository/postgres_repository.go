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

	"github.com/stablio/api/internal/database/postgres"
	"github.com/stablio/api/submissions/models"
)

const submissionColumns = `id, title, description, type, audience, url, image_url, topics,
	submitter_id, submitter_email, status, created_at`

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a submission repository.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

func (r *postgresRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate submission id: %w", err)
		}
		submission.ID = id
	}
	if submission.Status == "" {
		submission.Status = models.StatusPending
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}
	if submission.Topics == nil {
		submission.Topics = pq.StringArray{}
	}

	query := `
		INSERT INTO submissions (id, title, description, type, audience, url, image_url, topics,
			submitter_id, submitter_email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query,
		submission.ID, submission.Title, submission.Description, submission.Type,
		submission.Audience, submission.URL, submission.ImageURL, submission.Topics,
		submission.SubmitterID, submission.SubmitterEmail, submission.Status, submission.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *postgresRepository) FindByStatus(ctx context.Context, status string) ([]models.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM submissions
		WHERE status = $1
		ORDER BY created_at ASC`, submissionColumns)

	var submissions []models.Submission
	if err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &submissions, query, status); err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	return submissions, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	query := fmt.Sprintf("SELECT %s FROM submissions WHERE id = $1", submissionColumns)

	var submission models.Submission
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &submission, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return &submission, nil
}

func (r *postgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error) {
	// The status precondition is part of the WHERE clause so two admins
	// reviewing the same row cannot both win.
	query := `
		UPDATE submissions
		SET status = $1
		WHERE id = $2 AND status = $3`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, toStatus, id, fromStatus)
	if err != nil {
		return false, fmt.Errorf("update submission status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
