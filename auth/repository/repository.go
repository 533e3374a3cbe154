package repository

import (
	"context"
	"errors"

	"github.com/stablio/api/auth/models"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email already has an account.
	ErrEmailTaken = errors.New("email already registered")
)

// AuthRepository is the store for accounts and the admin allowlist.
type AuthRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// IsAdmin reports whether the email is in the admins table. Admin
	// status is a membership lookup, not a token claim.
	IsAdmin(ctx context.Context, email string) (bool, error)
}
