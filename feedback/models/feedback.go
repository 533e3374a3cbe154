package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// Feedback is one message from the site's feedback form. Name and email
// are optional; only the message itself is required.
type Feedback struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateFeedbackRequest is the feedback form payload.
type CreateFeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
