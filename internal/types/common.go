package types

import (
	uuid "github.com/gofrs/uuid"
)

// HTTP Header Constants
const (
	HeaderUID           = "uid"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication Constants
const (
	BearerPrefix = "Bearer "

	// AccessTokenCookie is the cookie consulted when no bearer header is present.
	AccessTokenCookie = "access_token"
)

// UserCtxName is the fiber.Ctx locals key holding the authenticated UserContext.
const UserCtxName = "user"

// Common Values
const (
	UserRole  = "user"
	AdminRole = "admin"
)

// UserContext is the identity extracted from a validated session token.
// Handlers read it from c.Locals(UserCtxName); the core only depends on
// UserID and Email being present.
type UserContext struct {
	UserID      uuid.UUID `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	SystemRole  string    `json:"role"`
	CreatedDate int64     `json:"createdDate"`
}
