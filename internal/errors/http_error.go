// Package errors carries the handler-layer error envelope: failures that
// map onto a specific HTTP response instead of a generic 500.
package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError couples a client-facing message with the status it is served
// with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers for common responses
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrNotFound     = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrBadGateway   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadGateway, msg) }
)

// Write renders err as a plain-text response. An *HTTPError is served with
// its own status; anything else degrades to a 500 without leaking internals.
func Write(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, "Internal error", http.StatusInternalServerError)
}
