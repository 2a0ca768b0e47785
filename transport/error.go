package transport

import "errors"

// Error reports a request that failed before a complete response arrived.
// Message and Code are copied from the client failure held in Err.
type Error struct {
	Message string
	Code    int
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the client failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransportError checks if err is or wraps an *Error.
func IsTransportError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// transferFailure is implemented by client errors that can tell a failed
// exchange apart from other failures. *httpclient.Error implements it.
type transferFailure interface {
	error
	Transfer() bool
	ErrorCode() int
}

// normalize converts transfer failures into *Error and returns every other
// error unchanged.
func normalize(err error) error {
	if err == nil || IsTransportError(err) {
		return err
	}
	var tf transferFailure
	if !errors.As(err, &tf) || !tf.Transfer() {
		return err
	}
	return &Error{
		Message: err.Error(),
		Code:    tf.ErrorCode(),
		Err:     err,
	}
}
