package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrProtectedSection = errors.New("the unassigned notes section cannot be deleted")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrStoreUnreadable  = errors.New("stored notebook could not be read; not saving over it")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a lookup miss. Nothing was changed or written.
// Name is set instead of ID when the caller looked up by name.
type NotFoundError struct {
	Kind string // "section" or "note"
	ID   string
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("no %s named %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func sectionNotFound(id string) error {
	return &NotFoundError{Kind: "section", ID: id}
}

func noteNotFound(id string) error {
	return &NotFoundError{Kind: "note", ID: id}
}
