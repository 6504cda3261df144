package dialog

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrUnknownControlType = errors.New("unknown control type")
	ErrInvalidHandle      = errors.New("invalid handle")
)

// Error is returned by session operations. Capacity and type failures are
// programming errors in the caller; hosts usually escalate them to a quit.
type Error struct {
	Op     string
	Msg    string
	Handle int
	Err    error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("dialog: %s %d: %v", e.Op, e.Handle, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFatal reports whether err is a capacity or control type failure.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCapacityExceeded) || errors.Is(err, ErrUnknownControlType)
}
