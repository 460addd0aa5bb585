// Package common defines sentinel errors shared by the sondage server
// layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Configuration errors.
	ErrorUnknownStorage = errors.New("unknown storage backend")
)
