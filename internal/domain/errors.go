package domain

import "fmt"

// ValidationErr reports input that was rejected before any side effect happened.
type ValidationErr struct {
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// NewValidationErr creates a ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{message: message}
}

// NewValidationErrf creates a ValidationErr with a formatted message.
func NewValidationErrf(format string, args ...any) *ValidationErr {
	return NewValidationErr(fmt.Sprintf(format, args...))
}

// NotFoundErr reports a conversation session that does not exist.
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

// NewNotFoundErr creates a NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{message: message}
}

// NewNotFoundErrf creates a NotFoundErr with a formatted message.
func NewNotFoundErrf(format string, args ...any) *NotFoundErr {
	return NewNotFoundErr(fmt.Sprintf(format, args...))
}
