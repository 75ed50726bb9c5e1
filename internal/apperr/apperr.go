// Package apperr holds the sentinel errors shared across services and
// controllers. Services wrap these with context; controllers map them to
// HTTP status codes.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a record or resource does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed or inconsistent input.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned for missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)
