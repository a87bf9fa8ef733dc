package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNetwork indicates a transport error or a non-success response from the remote rate service.
var ErrNetwork = errors.New("rate service unavailable")

// ErrEmptyCatalog indicates the remote service answered successfully but returned no symbols.
var ErrEmptyCatalog = errors.New("symbol catalog is empty")

// ErrPersistence indicates a write to the symbol store failed.
var ErrPersistence = errors.New("symbol store write failed")

// ErrStaleResponse indicates a rate response arrived after a newer request was issued and was discarded.
var ErrStaleResponse = errors.New("stale rate response discarded")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a message.
func NewValidationError(message string) error {
	return fmt.Errorf("%w: %s", ErrValidation, message)
}

// IsAbsorbable reports whether err is a failure the rendering boundary should log and swallow,
// keeping whatever state is already on screen.
func IsAbsorbable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrEmptyCatalog) || errors.Is(err, ErrStaleResponse)
}
