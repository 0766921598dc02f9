// Package apperrors defines the business-error taxonomy shared by services,
// repositories and handlers. Absence, invalid transitions and already-done
// conflicts are ordinary outcomes modelled as values, not panics.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %s", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for the named entity and id.
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidStateError indicates the operation is not valid for the entity's
// current status (e.g. assigning to an occupied bed).
type InvalidStateError struct {
	Entity string
	ID     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s is in state %q, operation not allowed", e.Entity, e.ID, e.Status)
}

// NewInvalidState builds an InvalidStateError.
func NewInvalidState(entity, id, status string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, Status: status}
}

// ConflictError indicates an idempotent-looking re-request: the requested
// outcome already holds. DischargedAt carries the prior result so callers can
// tell "already done" from misuse.
type ConflictError struct {
	Entity       string
	ID           string
	DischargedAt string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s was already discharged at %s", e.Entity, e.ID, e.DischargedAt)
}

// NewConflict builds a ConflictError carrying the prior discharge timestamp.
func NewConflict(entity, id, dischargedAt string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, DischargedAt: dischargedAt}
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorage wraps err as a StorageError for the given operation.
func NewStorage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// InternalError wraps a failure that happened after state was already
// committed (e.g. the release event could not be published).
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error during %s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternal wraps err as an InternalError for the given operation.
func NewInternal(op string, err error) *InternalError {
	return &InternalError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInvalidState reports whether err is (or wraps) an InvalidStateError.
func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}
