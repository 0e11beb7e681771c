package opt

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a recovered panic value that was not itself an
// error, along with the goroutine stack captured at recovery. Panics
// with error values are passed through as-is instead.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Try runs f and converts its outcome into a result. A returned error
// becomes Err with that error. A panic is recovered: an error panic
// value becomes the Err payload unchanged, any other panic value is
// wrapped in a PanicError.
func Try[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Err[T](recoveredError(p))
		}
	}()
	return FromTuple(f())
}

func recoveredError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return &PanicError{Value: p, Stack: debug.Stack()}
}

// Lift converts a (T, error) function into a result-returning one with
// the same panic conversion as Try.
func Lift[A, T any](f func(A) (T, error)) func(A) Result[T] {
	return func(a A) Result[T] {
		return Try(func() (T, error) { return f(a) })
	}
}

// Lift2 is Lift for two-argument functions.
func Lift2[A, B, T any](f func(A, B) (T, error)) func(A, B) Result[T] {
	return func(a A, b B) Result[T] {
		return Try(func() (T, error) { return f(a, b) })
	}
}
