package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/stablio/api/feedback/models"
	"github.com/stablio/api/internal/database/postgres"
)

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a feedback repository.
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

func (r *postgresRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate feedback id: %w", err)
		}
		feedback.ID = id
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO feedback (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query,
		feedback.ID, feedback.Name, feedback.Email, feedback.Message, feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}
