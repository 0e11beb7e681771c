package opt

// Type-changing combinators live here as package functions: Go methods
// cannot introduce new type parameters, so anything T -> U is spelled
// MapOption(o, f) rather than o.Map(f).

// MapOption transforms the contained value into a new type. None maps
// to None and f is not called.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return Option[U]{}
	}
	return Some(f(o.value))
}

// AndThenOption composes a function returning an option of a new type.
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return Option[U]{}
	}
	return f(o.value)
}

// MatchOption collapses an option to a value: exactly one handler runs.
func MatchOption[T, U any](o Option[T], some func(T) U, none func() U) U {
	if o.some {
		return some(o.value)
	}
	return none()
}

// ApOption applies a wrapped function to a wrapped value. A None on the
// function side wins before the value side is considered.
func ApOption[T, U any](f Option[func(T) U], o Option[T]) Option[U] {
	if !f.some {
		return Option[U]{}
	}
	if !o.some {
		return Option[U]{}
	}
	return Some(f.value(o.value))
}

// MapResult transforms the success value into a new type. Err carries
// its error over unchanged and f is not called.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// AndThenResult composes a function returning a result of a new type.
func AndThenResult[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return f(r.value)
}

// MatchResult collapses a result to a value: exactly one handler runs.
func MatchResult[T, U any](r Result[T], ok func(T) U, err func(error) U) U {
	if r.err == nil {
		return ok(r.value)
	}
	return err(r.err)
}

// BimapResult transforms both sides at once; exactly one of the two
// functions is applied.
func BimapResult[T, U any](r Result[T], ok func(T) U, errf func(error) error) Result[U] {
	if r.err == nil {
		return Ok(ok(r.value))
	}
	return Err[U](errf(r.err))
}

// BichainResult composes a result-returning handler for each side;
// exactly one of the two functions is applied.
func BichainResult[T, U any](r Result[T], ok func(T) Result[U], errf func(error) Result[U]) Result[U] {
	if r.err == nil {
		return ok(r.value)
	}
	return errf(r.err)
}

// ApResult applies a wrapped function to a wrapped value. When both
// sides are Err, the function side's error wins.
func ApResult[T, U any](f Result[func(T) U], r Result[T]) Result[U] {
	if f.err != nil {
		return Err[U](f.err)
	}
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f.value(r.value))
}

// SequenceOptions gathers the values of all options, or None if any of
// them is None.
func SequenceOptions[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.some {
			return Option[[]T]{}
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// SequenceResults gathers the values of all results, or the first Err.
func SequenceResults[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// PartitionResults splits results into their Ok values and Err errors,
// keeping order within each side.
func PartitionResults[T any](results []Result[T]) ([]T, []error) {
	var values []T
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
		} else {
			values = append(values, r.value)
		}
	}
	return values, errs
}

// CollectOptions keeps the values of the Some options, dropping None.
func CollectOptions[T any](opts []Option[T]) []T {
	var values []T
	for _, o := range opts {
		if o.some {
			values = append(values, o.value)
		}
	}
	return values
}
