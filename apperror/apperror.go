// apperror/apperror.go - Application error taxonomy
package apperror

import (
	"fmt"
	"net/http"
)

type ErrorType int

const (
	// InternalError is an unexpected storage or runtime failure
	InternalError ErrorType = iota
	// ValidationError is a missing or malformed request field
	ValidationError
	// NotFoundError is a referenced user or challenge that does not exist
	NotFoundError
	// ConfigError is a missing external credential or broken configuration
	ConfigError
	// UpstreamError is a failure talking to the external tutoring service
	UpstreamError
)

// AppError carries an error type so the HTTP layer can pick the right
// status code, plus an optional underlying error for server-side logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status code.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConfigError, UpstreamError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ValidationError, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: NotFoundError, Message: message}
}

func NewConfigError(message string) *AppError {
	return &AppError{Type: ConfigError, Message: message}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Type: UpstreamError, Message: message, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: InternalError, Message: message, Err: err}
}
