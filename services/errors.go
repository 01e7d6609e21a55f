package services

import (
	"errors"
	"fmt"

	"github.com/LovationAdmin/holiday-api/repository"
)

// Error kinds. Handlers map them to HTTP status codes; use errors.Is to test.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("not authenticated")
	ErrForbidden    = errors.New("admin access required")
	ErrNotFound     = errors.New("not found")
)

// ValidationError reports a bad input shape or value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// kindError carries a caller-facing message for one of the sentinel kinds.
type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Is(target error) bool { return target == e.kind }

func unauthorized(message string) error {
	return &kindError{kind: ErrUnauthorized, message: message}
}

func forbidden(message string) error {
	return &kindError{kind: ErrForbidden, message: message}
}

func notFound(resource string) error {
	return &kindError{kind: ErrNotFound, message: resource + " not found"}
}

// StorageError wraps an underlying persistence failure. Its message is passed
// through to the client verbatim.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// fromStore converts a repository error into the service taxonomy.
func fromStore(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(resource)
	}
	return &StorageError{Op: op, Err: err}
}
