package usecase

import "errors"

var (
	ErrDatabaseUnavailable = errors.New("database not available")
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
)

// ValidationError carries a message meant for the client. Field, when set,
// names the offending request field. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
