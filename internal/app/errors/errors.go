package errors

import "fmt"

// Common error types
var (
	// Grid errors
	ErrOutOfRange    = New("index out of range")
	ErrShapeMismatch = New("grid shape mismatch")
	ErrEmptyGrid     = New("grid must have at least one row and one column")
	ErrRaggedGrid    = New("grid rows must all have the same length")

	// Ranking errors
	ErrInvalidK      = New("result count must be positive")
	ErrUnknownMetric = New("unknown similarity metric")
	ErrIndexNotReady = New("item index is still being built")

	// Feed errors
	ErrMalformedRecord = New("malformed rating record")
	ErrFeedSource      = New("feed source unavailable")

	// Configuration errors
	ErrMissingConfig = New("configuration is required")
	ErrInvalidConfig = New("invalid configuration")

	// File errors
	ErrFileNotFound    = New("file not found")
	ErrFileWriteFailed = New("file write failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Helper functions for common patterns

// OutOfRange reports an index outside [0, limit). The result matches
// ErrOutOfRange with errors.Is.
func OutOfRange(field string, index, limit int) error {
	return Wrapf(ErrOutOfRange, "%s %d outside [0, %d)", field, index, limit)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Wrapf(ErrInvalidConfig, "%s is invalid: %s", field, reason)
}

// MalformedRecord reports a feed line that could not be parsed.
func MalformedRecord(line int, reason string) error {
	return Wrapf(ErrMalformedRecord, "line %d: %s", line, reason)
}
