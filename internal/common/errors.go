// Package common defines sentinel errors shared by the client and server
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("invalid username or password")

	// Validation errors.
	ErrorDuplicateUsername = errors.New("username already exists")
	ErrorInvalidOwner      = errors.New("owner id must be positive")
	ErrorIDMismatch        = errors.New("task id does not match target id")
)
