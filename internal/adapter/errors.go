package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotConfigured is returned by [NewHTTPServerAdapter] when no entry server
// endpoint was provided.
var ErrNotConfigured = errors.New("entry server endpoint is not configured")

// Status sentinels wrapped by [ResponseError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError is a non-2xx answer of the entry server.
type ResponseError struct {
	StatusCode int
	// Message is the backend `message` field; empty when the body was not
	// the JSON failure shape.
	Message string

	sentinel error
}

// NewResponseError builds the error for a non-2xx status, picking the status
// sentinel it unwraps to.
func NewResponseError(statusCode int, message string) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Message: message}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.sentinel = ErrBadRequest
	case http.StatusNotFound:
		respErr.sentinel = ErrNotFound
	case http.StatusConflict:
		respErr.sentinel = ErrConflict
	case http.StatusInternalServerError:
		respErr.sentinel = ErrInternalServerError
	default:
		respErr.sentinel = ErrUnexpectedStatus
	}

	return respErr
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.sentinel)
	}
	return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.sentinel, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.sentinel
}

// Message returns the backend message carried by err, if any.
func Message(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}
