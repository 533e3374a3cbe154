package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password is not strong enough")
	ErrMissingUserContext = errors.New("missing user context")
	ErrDatabaseOperation  = errors.New("database operation failed")
)

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeMissingUserCtx     = "MISSING_USER_CONTEXT"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
)

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
	case errors.Is(err, ErrWeakPassword):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeWeakPassword, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrInvalidCredentials):
		// Same response for unknown email and wrong password.
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeInvalidCredentials, Message: "Invalid email or password"})
	case errors.Is(err, ErrEmailTaken):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{Code: CodeEmailTaken, Message: err.Error(), Details: err.Error()})
	case errors.Is(err, ErrMissingUserContext):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{Code: CodeMissingUserCtx, Message: err.Error()})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{Code: CodeDatabaseError, Message: err.Error(), Details: err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred", Details: err.Error()})
	}
}

func HandleMissingFieldError(c *fiber.Ctx, field string) error {
	msg := field + " is required"
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: msg, Details: msg})
}

func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Code: CodeInvalidRequest, Message: message, Details: message})
}
