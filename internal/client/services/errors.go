package services

import (
	"errors"
	"strings"
)

var (
	// ErrBusy is returned when a submission is attempted while a previous
	// one from the same flow is still pending. No request is made.
	ErrBusy = errors.New("request already in progress")

	ErrNoSession    = errors.New("no user in session")
	ErrAlreadyVoted = errors.New("user already voted")
)

// FieldError is a validation failure for one form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError groups field errors found before any request is sent.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

// Field returns the message for field, or "" if it is valid.
func (e *ValidationError) Field(name string) string {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message
		}
	}
	return ""
}

// AuthError is a failed login or registration as shown to the user.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }
