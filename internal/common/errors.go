// Package common defines shared constants and sentinel errors used across the
// layers of the content API. Callers should use errors.Is / errors.As to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	ErrorHasDependents = errors.New("has dependent records")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrorUnauthenticated = errors.New("unauthenticated")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Entity names the resource class a lookup failure refers to. The value is
// also the public half of the "<Entity> not found" response body.
type Entity string

const (
	EntityUser     Entity = "User"
	EntityCategory Entity = "Category"
	EntityBlog     Entity = "Blog"
)

// NotFoundError reports which lookup in the ownership chain failed.
//
// Scoped distinguishes the two internal failure classes that share one public
// face: false means a direct lookup by id found nothing; true means no record
// matched the full ownership tuple, i.e. the record is either absent or owned
// by someone else. The response body is identical for both so that existence
// is never leaked to non-owners.
type NotFoundError struct {
	Entity Entity
	Scoped bool
}

func (e *NotFoundError) Error() string {
	if e.Scoped {
		return string(e.Entity) + " not found in caller scope"
	}
	return string(e.Entity) + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrorNotFound
}

// Message is the client-facing text, the same for absent and foreign-owned.
func (e *NotFoundError) Message() string {
	return string(e.Entity) + " not found"
}

// ValidationError is a client error for a missing or malformed request field.
// Message is returned verbatim in the response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a *ValidationError as an error value.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
