package opt

import "fmt"

// Option[T] holds either a value of T (Some) or nothing (None).
// The zero value is None, so emptiness needs no allocation and two
// None options of the same instantiation always compare equal.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a nullable pointer: nil becomes None, anything else
// becomes Some of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return Some(*p)
}

// FromOK converts a comma-ok pair, the inverse of Get.
func FromOK[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return Some(v)
}

type optionTag interface{ optionTag() }

func (Option[T]) optionTag() {}

// IsOption reports whether v is an Option of any instantiation from this
// package. Structurally similar values from elsewhere do not count.
func IsOption(v any) bool {
	_, ok := v.(optionTag)
	return ok
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get destructures the option into a comma-ok pair.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns the contained value, or the zero value of T on None.
func (o Option[T]) Value() T {
	return o.value
}

// Unwrap returns the contained value and panics with ErrUnwrapNone on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(ErrUnwrapNone)
	}
	return o.value
}

// MustNone panics with ErrNotNone unless the option is None.
func (o Option[T]) MustNone() {
	if o.some {
		panic(ErrNotNone)
	}
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// IfSome calls f with the contained value when the option is Some.
func (o Option[T]) IfSome(f func(T)) {
	if o.some {
		f(o.value)
	}
}

// IfNone calls f when the option is None.
func (o Option[T]) IfNone(f func()) {
	if !o.some {
		f()
	}
}

// Map transforms the contained value. None is returned unchanged and f
// is not called.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(f(o.value))
}

// AndThen composes a function that itself returns an option. None is
// returned unchanged and f is not called.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return f(o.value)
}

// OrElse recovers from None via f. Some is returned unchanged and f is
// not called.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// And returns other when the option is Some, None otherwise. The
// caller builds other eagerly either way; AndThen is the lazy form.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other
}

// Or returns the option when it is Some, other otherwise. The caller
// builds other eagerly either way; OrElse is the lazy form.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// Filter keeps a Some value only when pred accepts it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return Option[T]{}
}

// OkOr converts to a result: Some becomes Ok, None becomes Err with err.
func (o Option[T]) OkOr(err error) Result[T] {
	if !o.some {
		return Err[T](err)
	}
	return Ok(o.value)
}

// OkOrElse is OkOr with the error built lazily, only on None.
func (o Option[T]) OkOrElse(f func() error) Result[T] {
	if !o.some {
		return Err[T](f())
	}
	return Ok(o.value)
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
