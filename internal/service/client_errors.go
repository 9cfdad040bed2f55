package service

import "errors"

// Failure kinds of backend-facing client operations. They are matched with
// errors.Is on an [*OperationError].
var (
	ErrFetchFailed    = errors.New("fetch failed")
	ErrMutationFailed = errors.New("mutation failed")
)

// Session refusals. A refused operation does not reach the backend and does
// not replace the current error.
var (
	ErrNoUserSelected = errors.New("no user selected")
	ErrNoMorePages    = errors.New("no more pages")
	ErrBusy           = errors.New("another operation is in progress")
	ErrUncleared      = errors.New("current error must be cleared first")
)

// OperationError is a failed backend round trip.
//
// Message is what the user sees: the backend `message` when one was sent,
// otherwise a generic text for the Kind.
type OperationError struct {
	Kind    error
	Op      string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
