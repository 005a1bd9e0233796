package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Client errors
	ErrorTypeValidation ErrorType = "VALIDATION"

	// Application errors
	ErrorTypeInternal ErrorType = "INTERNAL"
	ErrorTypeTimeout  ErrorType = "TIMEOUT"

	// External dependency errors
	ErrorTypeNetwork  ErrorType = "NETWORK"
	ErrorTypeExternal ErrorType = "EXTERNAL"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType
	Message    string
	Service    string
	Cause      error
	StackTrace string
	HTTPStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// captureStackTrace captures the current stack trace
func captureStackTrace() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s:%d %s\n", frame.File, frame.Line, frame.Function)
		if !more {
			break
		}
	}
	return b.String()
}

// NewValidationError creates a client input error. The message is returned
// to the caller verbatim.
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		StackTrace: captureStackTrace(),
	}
}

// NewTimeoutError creates a timeout error for a call to service
func NewTimeoutError(service string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    fmt.Sprintf("request to '%s' timed out", service),
		Service:    service,
		Cause:      err,
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

// NewNetworkError creates a network error for a call to service
func NewNetworkError(service string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeNetwork,
		Message:    fmt.Sprintf("could not reach '%s'", service),
		Service:    service,
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewExternalError creates an error for an unusable response from service
func NewExternalError(service, message string) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Message:    message,
		Service:    service,
		HTTPStatus: http.StatusBadGateway,
	}
}

// ClassifyTransportError turns an error returned by an HTTP client call into
// a timeout or network AppError.
func ClassifyTransportError(service string, err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(service, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(service, err)
	}
	return NewNetworkError(service, err)
}

// Helper functions

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return IsType(err, ErrorTypeTimeout)
}

// Describe returns a short human readable description of err, preferring
// the underlying cause of an AppError.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	appErr := GetAppError(err)
	if appErr == nil {
		return err.Error()
	}
	if appErr.Cause != nil {
		return appErr.Cause.Error()
	}
	return appErr.Message
}

// Outcome returns a low-cardinality label for metrics
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	if appErr := GetAppError(err); appErr != nil {
		return strings.ToLower(string(appErr.Type))
	}
	return "error"
}
