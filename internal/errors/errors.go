// Package errors provides centralized error definitions and error handling
// utilities for the flowdeck codebase. It defines the fetch/delete error
// taxonomy used by the page state machine, sentinel errors for common
// conditions, and classification helpers.
//
// The package provides three domain error types, one per remote operation
// the dashboard performs:
//   - ListFetchError: the instance-name list could not be fetched
//   - DetailFetchError: a single instance's details could not be fetched
//   - DeleteError: a delete request for an instance failed
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInstanceNotFound) { ... }
//
//	var delErr *errors.DeleteError
//	if errors.As(err, &delErr) { ... }
//
//	if errors.IsRetryable(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors shared across packages.
var (
	// ErrInstanceNotFound indicates the remote service has no instance with
	// the requested name.
	ErrInstanceNotFound = New("flow instance not found")

	// ErrServiceUnavailable indicates the remote flow service could not be
	// reached at all (transport-level failure).
	ErrServiceUnavailable = New("flow service unavailable")

	// ErrIllegalTransition indicates an event was applied to the page state
	// machine in a state where it is not valid (for example a second delete
	// request while one is already pending).
	ErrIllegalTransition = New("illegal state transition")

	// ErrDeletionPending indicates a deletion is already confirming or in
	// flight and a new one cannot be started.
	ErrDeletionPending = New("a deletion is already pending")
)

// ListFetchError indicates the instance-name list fetch failed. The page
// shows a generic load failure for this; no granularity is preserved.
type ListFetchError struct {
	Err error
}

func (e *ListFetchError) Error() string {
	return fmt.Sprintf("failed to list flow instances: %v", e.Err)
}

func (e *ListFetchError) Unwrap() error { return e.Err }

// NewListFetchError wraps err as a ListFetchError.
func NewListFetchError(err error) *ListFetchError {
	return &ListFetchError{Err: err}
}

// DetailFetchError indicates the detail fetch for a single named instance
// failed. Name identifies the instance whose fetch failed.
type DetailFetchError struct {
	Name string
	Err  error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("failed to fetch details for flow instance %q: %v", e.Name, e.Err)
}

func (e *DetailFetchError) Unwrap() error { return e.Err }

// NewDetailFetchError wraps err as a DetailFetchError for the named instance.
func NewDetailFetchError(name string, err error) *DetailFetchError {
	return &DetailFetchError{Name: name, Err: err}
}

// DeleteError indicates a delete request for a named instance failed.
// Message carries the human-readable text reported by the service, suitable
// for direct display on the alert surface.
type DeleteError struct {
	Name    string
	Message string
	Err     error
}

func (e *DeleteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("failed to delete flow instance %q: %s", e.Name, e.Message)
	}
	return fmt.Sprintf("failed to delete flow instance %q: %v", e.Name, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// NewDeleteError wraps err as a DeleteError for the named instance.
// If message is empty and err is non-nil, the error text of err is used
// as the display message.
func NewDeleteError(name, message string, err error) *DeleteError {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &DeleteError{Name: name, Message: message, Err: err}
}

// IllegalTransitionError reports an event applied in a state where the page
// state machine does not accept it. Event and State are short human-readable
// descriptions used in logs and alerts.
type IllegalTransitionError struct {
	Event string
	State string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: event %s not valid in state %s", e.Event, e.State)
}

// Unwrap allows errors.Is(err, ErrIllegalTransition) to match.
func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }

// NewIllegalTransitionError creates an IllegalTransitionError for the given
// event name and state description.
func NewIllegalTransitionError(event, state string) *IllegalTransitionError {
	return &IllegalTransitionError{Event: event, State: state}
}

// IsRetryable reports whether the error represents a transient condition
// that may succeed if the operation is attempted again. Transport-level
// failures are retryable; unknown instances and illegal transitions are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if Is(err, ErrInstanceNotFound) || Is(err, ErrIllegalTransition) {
		return false
	}
	if Is(err, ErrServiceUnavailable) {
		return true
	}
	var listErr *ListFetchError
	if As(err, &listErr) {
		return true
	}
	var detailErr *DetailFetchError
	return As(err, &detailErr)
}

// IsUserFacing reports whether the error carries a message safe to display
// to the user. Delete failures carry the service's human-readable message;
// illegal transitions are phrased for display as well.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var delErr *DeleteError
	if As(err, &delErr) {
		return true
	}
	return Is(err, ErrIllegalTransition)
}
