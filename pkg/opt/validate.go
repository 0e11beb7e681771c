package opt

import "errors"

// ValidateAll runs every check against the contained value and gathers
// the failures into one joined error. An Err input passes through
// unchanged and no check runs; with no failing checks the input comes
// back as-is.
func ValidateAll[T any](r Result[T], checks ...func(T) error) Result[T] {
	if r.err != nil {
		return r
	}
	var errs []error
	for _, check := range checks {
		if err := check(r.value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Err[T](errors.Join(errs...))
	}
	return r
}

// Errors unpacks an error built by errors.Join into its parts. A nil
// error yields nil, any other single error a one-element slice.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
