// Package apperror defines the application's typed error.
//
// Every hard failure in the data layer is an *Error carrying a message and
// a status code. The codes reuse HTTP-status vocabulary purely as a
// severity/classification convention; there is no network surface.
package apperror

import "errors"

// Classification codes used across the data layer.
const (
	// CodeInvalid marks rejected input: an unparsable or empty CSV file,
	// an export with no data.
	CodeInvalid = 400

	// CodeNotFound marks operations on an ID that no longer resolves.
	CodeNotFound = 404

	// CodeUnprocessable marks a CSV batch rejected by validation.
	CodeUnprocessable = 422

	// CodeCorrupt marks stored data that failed to deserialize.
	CodeCorrupt = 500

	// CodeStorage marks a failed write to the backing store.
	CodeStorage = 507
)

// Error is the application error type.
type Error struct {
	Message    string
	StatusCode int
	cause      error
}

// New creates an Error with the given message and status code.
func New(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}

// Wrap creates an Error that records an underlying cause.
func Wrap(message string, statusCode int, cause error) *Error {
	return &Error{Message: message, StatusCode: statusCode, cause: cause}
}

// NotFound creates a 404-class Error.
func NotFound(message string) *Error {
	return New(message, CodeNotFound)
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Code extracts the status code from err, or 0 if err is not an *Error.
func Code(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404-class application error.
func IsNotFound(err error) bool {
	return Code(err) == CodeNotFound
}
