package hassmodel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an entity id is unknown to the context.
var ErrNotFound = errors.New("hassmodel: entity not found")

// NotFoundError represents an error when an entity is not found.
type NotFoundError struct {
	entityID string
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hassmodel: entity %s not found", e.entityID)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// EntityID returns the id that was looked up.
func (e *NotFoundError) EntityID() string {
	return e.entityID
}

// NewNotFoundError returns a new NotFoundError for entityID.
func NewNotFoundError(entityID string) *NotFoundError {
	return &NotFoundError{entityID: entityID}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e)
}

// ServiceError wraps a failed service call.
type ServiceError struct {
	Domain    string
	Service   string
	EntityIDs []string
	Err       error
}

// Error returns the error string.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("hassmodel: call %s.%s on %s: %v",
		e.Domain, e.Service, strings.Join(e.EntityIDs, ","), e.Err)
}

// Unwrap returns the underlying error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsServiceError returns true if the error is a ServiceError.
func IsServiceError(err error) bool {
	if err == nil {
		return false
	}
	var e *ServiceError
	return errors.As(err, &e)
}
