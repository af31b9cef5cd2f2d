package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrRateLimited        = errors.New("rate limited")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("not configured")
	ErrTimeout            = errors.New("timeout")
)

// AppError carries the HTTP status and public message for a failure.
type AppError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

// Conflict is an invariant violation. The public API reports these as 400.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrConflict)
}

// RateLimited is a rejected duplicate submission, also reported as 400.
func RateLimited(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrRateLimited)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func InvalidCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, "Invalid credentials", ErrInvalidCredentials)
}

func Timeout() *AppError {
	return NewAppError(http.StatusServiceUnavailable, "Request timed out, please retry", ErrTimeout)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "Internal server error", err)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
