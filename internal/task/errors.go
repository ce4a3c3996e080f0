package task

import "errors"

// ErrInvalidArgument is the only error kind produced by tasks and the store.
// Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which input was rejected and why.
type ArgumentError struct {
	Field  string // "id", "title", "description" or "completed"
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

var (
	errInvalidID    = &ArgumentError{Field: "id", Reason: "task ID must be a positive integer"}
	errInvalidTitle = &ArgumentError{Field: "title", Reason: "task title must be a non-empty string"}
)

// ValidateID returns an ArgumentError unless id is a positive integer.
func ValidateID(id int) error {
	if id <= 0 {
		return errInvalidID
	}
	return nil
}

// ValidateTitle returns an ArgumentError unless title has at least one
// non-whitespace character.
func ValidateTitle(title string) error {
	if normalizeTitle(title) == "" {
		return errInvalidTitle
	}
	return nil
}
