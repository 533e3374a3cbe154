package models

import (
	"time"

	"github.com/gofrs/uuid"
)

// User is an account row. The password never leaves this package as
// anything but a bcrypt hash.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	DisplayName  string    `json:"displayName" db:"display_name"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// SignupRequest is the signup form payload.
type SignupRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser is the identity shape the rest of the app consumes.
type SessionUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	IsAdmin     bool      `json:"isAdmin"`
}

// SessionResponse is returned by login, signup and the session read.
type SessionResponse struct {
	User        SessionUser `json:"user"`
	AccessToken string      `json:"accessToken,omitempty"`
}
