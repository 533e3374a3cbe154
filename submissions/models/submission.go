package models

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/lib/pq"
)

// Submission statuses. A submission is born pending and moves exactly
// once, to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is a user-proposed resource awaiting moderation.
type Submission struct {
	ID             uuid.UUID      `json:"id" db:"id"`
	Title          string         `json:"title" db:"title"`
	Description    string         `json:"description" db:"description"`
	Type           string         `json:"type" db:"type"`
	Audience       string         `json:"audience" db:"audience"`
	URL            string         `json:"url" db:"url"`
	ImageURL       string         `json:"imageUrl" db:"image_url"`
	Topics         pq.StringArray `json:"topics" db:"topics"`
	SubmitterID    uuid.UUID      `json:"submitterId" db:"submitter_id"`
	SubmitterEmail string         `json:"submitterEmail" db:"submitter_email"`
	Status         string         `json:"status" db:"status"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

// CreateSubmissionRequest is the submit form payload.
type CreateSubmissionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Audience    string   `json:"audience"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"imageUrl"`
	Topics      []string `json:"topics"`
}
