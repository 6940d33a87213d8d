// Package apperror defines the error taxonomy shared by handlers and
// usecases. Expected failures carry an HTTP status and a client-safe
// message; everything else collapses to a generic 500 so internals never
// leak to clients.
package apperror

import (
	"errors"
	"net/http"
)

// Error is a client-visible failure with an HTTP status code.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with an arbitrary status code.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NotFound reports a missing record (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Unauthorized reports failed authentication (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden reports an authorization failure (403).
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// Duplicate reports a uniqueness violation (409).
func Duplicate(message string) *Error {
	return New(http.StatusConflict, message)
}

// BadRequest reports an invalid request body or parameter (400).
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// StatusOf maps any error to the status and message sent to the client.
// Unclassified errors become a generic internal server error.
func StatusOf(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, "Internal Server Error"
}
