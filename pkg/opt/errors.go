package opt

import (
	"context"
	"errors"
)

var (
	// ErrUnwrapNone is the panic value of Option.Unwrap on a None option.
	ErrUnwrapNone = errors.New("called Unwrap on a None option")

	// ErrNotNone is the panic value of Option.MustNone on a Some option.
	ErrNotNone = errors.New("called MustNone on a Some option")

	// ErrUnwrapErr is matched by the panic value of Result.Unwrap on an
	// Err result. The panic value also matches the contained error.
	ErrUnwrapErr = errors.New("called Unwrap on an Err result")

	// ErrUnwrapOk is the panic value of Result.UnwrapErr on an Ok result.
	ErrUnwrapOk = errors.New("called UnwrapErr on an Ok result")

	// ErrNilError replaces a nil error passed to the Err constructor, so
	// an Err result always carries a non-nil error.
	ErrNilError = errors.New("nil error")
)

// IsAborted reports whether err comes from context cancellation or a
// deadline, as opposed to an ordinary failure.
func IsAborted(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
