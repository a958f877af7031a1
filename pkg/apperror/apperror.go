package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrTooLarge     = errors.New("request entity too large")
	ErrInternal     = errors.New("internal server error")
)

// Messages shared by every handler that reports a generic failure.
const (
	MsgInternal         = "Internal server error"
	MsgEndpointNotFound = "Endpoint not found"
	MsgTooLarge         = "Request entity too large"
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

// NewNotFound reports a lookup miss. The message is "<Resource> not found".
func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

// NewInvalidInput reports a client error; msg is shown to the caller verbatim.
func NewInvalidInput(msg string, err error) *AppError {
	return NewAppError(ErrInvalidInput, msg, msg, err)
}

func NewTooLarge(limit int64, err error) *AppError {
	return NewAppError(ErrTooLarge, MsgTooLarge, fmt.Sprintf("body exceeds %d bytes", limit), err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, MsgInternal, details, err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// ToJSON renders the public body. Details and causes stay in the logs.
func (e *AppError) ToJSON() gin.H {
	if errors.Is(e.BaseError, ErrInternal) {
		return gin.H{"error": MsgInternal}
	}
	return gin.H{"error": e.Message}
}

// From converts any error into an *AppError, treating unknown errors as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("unexpected error", err)
}
