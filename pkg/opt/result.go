package opt

import "fmt"

// Result[T] holds either a value of T (Ok) or a non-nil error (Err).
// The nil-ness of the error is the discriminant, so the zero value is
// Ok of T's zero value and an Err result always has an error to report.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps a failure. A nil err is replaced with ErrNilError so the
// constructed result still reports failure.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{err: err}
}

// FromTuple converts a conventional (T, error) return into a result.
// The value is dropped when err is non-nil.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v}
}

type resultTag interface{ resultTag() }

func (Result[T]) resultTag() {}

// IsResult reports whether v is a Result of any instantiation from this
// package.
func IsResult(v any) bool {
	_, ok := v.(resultTag)
	return ok
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// IsAborted reports whether the result failed due to context
// cancellation or a deadline rather than an ordinary error.
func (r Result[T]) IsAborted() bool {
	return r.err != nil && IsAborted(r.err)
}

// Get destructures the result into a conventional (T, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the contained value, or the zero value of T on Err.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the contained error, or nil on Ok.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the contained value. On Err it panics with an error
// matching both ErrUnwrapErr and the contained error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(fmt.Errorf("%w: %w", ErrUnwrapErr, r.err))
	}
	return r.value
}

// UnwrapErr returns the contained error and panics with ErrUnwrapOk on Ok.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		panic(ErrUnwrapOk)
	}
	return r.err
}

// MustValue returns the contained value. On Err it panics with the
// contained error itself, unwrapped.
func (r Result[T]) MustValue() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

func (r Result[T]) UnwrapOrElse(f func(error) T) T {
	if r.err != nil {
		return f(r.err)
	}
	return r.value
}

// IfOk calls f with the contained value when the result is Ok.
func (r Result[T]) IfOk(f func(T)) {
	if r.err == nil {
		f(r.value)
	}
}

// IfErr calls f with the contained error when the result is Err.
func (r Result[T]) IfErr(f func(error)) {
	if r.err != nil {
		f(r.err)
	}
}

// Map transforms the contained value. Err is returned unchanged and f
// is not called.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.value))
}

// MapErr transforms the contained error. Ok is returned unchanged and f
// is not called. A nil result from f is replaced with ErrNilError.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](f(r.err))
}

// AndThen composes a function that itself returns a result. Err is
// returned unchanged and f is not called.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return f(r.value)
}

// OrElse recovers from Err via f. Ok is returned unchanged and f is not
// called.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return f(r.err)
}

// And returns other when the result is Ok, the original Err otherwise.
// The caller builds other eagerly either way; AndThen is the lazy form.
func (r Result[T]) And(other Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return other
}

// Or returns the result when it is Ok, other otherwise. The caller
// builds other eagerly either way; OrElse is the lazy form.
func (r Result[T]) Or(other Result[T]) Result[T] {
	if r.err != nil {
		return other
	}
	return r
}

// Option projects the success side: Ok becomes Some, Err becomes None
// and the error is discarded.
func (r Result[T]) Option() Option[T] {
	if r.err != nil {
		return Option[T]{}
	}
	return Some(r.value)
}

// ErrOption projects the failure side: Err becomes Some of the error,
// Ok becomes None.
func (r Result[T]) ErrOption() Option[error] {
	if r.err == nil {
		return Option[error]{}
	}
	return Some(r.err)
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
