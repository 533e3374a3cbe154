package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrInvalidUUID            = errors.New("invalid uuid")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrDatabaseOperation      = errors.New("database operation failed")
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidUUID    = "INVALID_UUID"
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

// AuthRedirectPath is where anonymous users are sent to sign in before a
// bookmark write is attempted.
const AuthRedirectPath = "/auth"

type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrInvalidUUID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidUUID, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrAuthenticationRequired):
		return HandleAuthRequired(c)
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: err.Error(), Details: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

// HandleAuthRequired rejects the request and signals where to sign in.
func HandleAuthRequired(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Code:    CodeAuthRequired,
		Message: "Sign in to bookmark resources",
		Details: fiber.Map{"redirectTo": AuthRedirectPath},
	})
}

func HandleUUIDError(c *fiber.Ctx, fieldName string) error {
	msg := fmt.Sprintf("Invalid %s format", fieldName)
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidUUID, Message: msg, Details: msg})
}
