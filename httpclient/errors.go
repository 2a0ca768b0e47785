package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorCode classifies HTTP client errors. Codes start at 1 so that a zero
// code never names a real failure.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota + 1
	// ErrCodeConnection indicates a connection failure (refused, DNS, TLS, etc).
	ErrCodeConnection
	// ErrCodeProtocol indicates a malformed or truncated response.
	ErrCodeProtocol
	// ErrCodeCanceled indicates the caller canceled the request.
	ErrCodeCanceled
	// ErrCodeValidation indicates a request that could not be built, or a 4xx
	// status when status errors are surfaced.
	ErrCodeValidation
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeRateLimit indicates rate limiting (429).
	ErrCodeRateLimit
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeProtocol:
		return "protocol"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeRateLimit:
		return "rate_limit"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error with classification.
type Error struct {
	// StatusCode is the HTTP status code (0 for transfer-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether the operation can be retried.
	Retryable bool
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Transfer reports whether the failure happened while moving bytes over the
// wire, as opposed to building the request or interpreting the status.
func (e *Error) Transfer() bool {
	switch e.Code {
	case ErrCodeTimeout, ErrCodeConnection, ErrCodeProtocol:
		return true
	default:
		return false
	}
}

// ErrorCode returns the numeric classification.
func (e *Error) ErrorCode() int {
	return int(e.Code)
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error {
	return &Error{
		Code:      ErrCodeConnection,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewProtocolError creates a protocol error for an unreadable response.
func NewProtocolError(statusCode int, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeProtocol,
		Message:    err.Error(),
		Retryable:  true,
		Err:        err,
	}
}

// NewCanceledError creates a cancellation error.
func NewCanceledError(err error) *Error {
	return &Error{
		Code:    ErrCodeCanceled,
		Message: err.Error(),
		Err:     err,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(msg string) *Error {
	return &Error{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewAuthError creates an authentication error.
func NewAuthError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeAuth,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(body []byte) *Error {
	return &Error{
		StatusCode: 404,
		Code:       ErrCodeNotFound,
		Message:    "HTTP 404",
		Body:       body,
	}
}

// NewRateLimitError creates a rate-limit error.
func NewRateLimitError(body []byte) *Error {
	return &Error{
		StatusCode: 429,
		Code:       ErrCodeRateLimit,
		Message:    "HTTP 429",
		Retryable:  true,
		Body:       body,
	}
}

// NewServerError creates a server error.
func NewServerError(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeServer,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Retryable:  true,
		Body:       body,
	}
}

// ClassifyStatusCode converts an HTTP status code into a typed error.
// Returns nil for 1xx, 2xx and 3xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	switch {
	case statusCode < 400:
		return nil
	case statusCode == 401 || statusCode == 403:
		return NewAuthError(statusCode, body)
	case statusCode == 404:
		return NewNotFoundError(body)
	case statusCode == 429:
		return NewRateLimitError(body)
	case statusCode < 500:
		return &Error{
			StatusCode: statusCode,
			Code:       ErrCodeValidation,
			Message:    fmt.Sprintf("HTTP %d", statusCode),
			Body:       body,
		}
	default:
		return NewServerError(statusCode, body)
	}
}

// classifyTransferError maps a failure from the round trip or body read.
func classifyTransferError(err error) *Error {
	switch {
	case errors.Is(err, context.Canceled):
		return NewCanceledError(err)
	case isTimeout(err):
		return NewTimeoutError(err)
	default:
		return NewConnectionError(err)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return hasCode(err, ErrCodeTimeout)
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	return hasCode(err, ErrCodeConnection)
}

// IsProtocol checks if an error is a protocol error.
func IsProtocol(err error) bool {
	return hasCode(err, ErrCodeProtocol)
}

// IsCanceled checks if an error is a cancellation error.
func IsCanceled(err error) bool {
	return hasCode(err, ErrCodeCanceled)
}

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

// IsTransfer checks if an error is a transfer-level failure.
func IsTransfer(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Transfer()
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
