package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Snapshot-related errors

// NotFoundError reports a snapshot the store does not know about
type NotFoundError struct {
	*DomainError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("%s not found: %s", kind, id)),
		Kind:        kind,
		ID:          id,
	}
}

// InvalidSnapshotError reports a stored record that cannot be turned into a snapshot
type InvalidSnapshotError struct {
	*DomainError
	Kind string
	ID   string
}

func NewInvalidSnapshotError(kind, id string, cause error) *InvalidSnapshotError {
	return &InvalidSnapshotError{
		DomainError: NewDomainError(fmt.Sprintf("invalid %s %s: %v", kind, id, cause)),
		Kind:        kind,
		ID:          id,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
