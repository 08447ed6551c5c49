// Package apperr classifies business errors so the HTTP layer can map
// them to status codes and client-facing messages uniformly.
package apperr

import (
	"errors"
	"net/http"
)

// Kind labels the class of failure.
type Kind int

const (
	// Internal is the fallback for store and infrastructure failures.
	Internal Kind = iota
	// Validation covers missing or malformed input.
	Validation
	// Conflict covers duplicate-resource failures (e.g. email taken).
	Conflict
	// NotFound covers lookups that resolve to no record.
	NotFound
	// Unauthorized covers requests without a valid session.
	Unauthorized
)

// Error carries a kind, a client-safe message, and an optional
// underlying cause that is logged server-side but never sent out.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a business error with no underlying cause.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a business error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to Internal for errors
// that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message extracts the client-safe message from err. Unclassified
// errors get a generic message so internals never leak to clients.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// HTTPStatus maps an error to the response code the API contract uses:
// business failures are 400, missing sessions 401, everything else 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation, Conflict, NotFound:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
