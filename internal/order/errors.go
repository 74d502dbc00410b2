package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRemoteCall        = errors.New("remote call failed")
	ErrUnknownFilter     = errors.New("unknown order filter")
)

// TransitionError is returned when a status change is not allowed from the
// order's current status. It matches ErrInvalidTransition.
type TransitionError struct {
	OrderID string
	From    Status
	To      Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot transition from %s to %s", e.OrderID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// RemoteCallError wraps a failed backend request. It matches ErrRemoteCall.
type RemoteCallError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend returned %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() []error { return []error{ErrRemoteCall, e.Err} }
