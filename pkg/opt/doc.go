// Package opt provides two small algebraic wrappers, Option[T] and
// Result[T], for handling absent and failed values explicitly instead
// of through nil checks or panics.
//
// Highlights:
// - Some/None/FromPtr/FromOK: construct Option[T]
// - Ok/Err/FromTuple: construct Result[T]
// - Map/AndThen/OrElse and their package-level T -> U forms: compose
//   without unwrapping at every step
// - MatchOption/MatchResult: collapse to a concrete value via handlers
// - Try/Lift: bridge panicking or (T, error) code into Result[T]
// - Go/Await: run a function in a goroutine and await a Result[T]
//   through a context
// - MarshalJSON/UnmarshalJSON: a stable tagged wire form for both types
//
// Both wrappers are plain immutable values. Their zero values are
// meaningful: a zero Option is None and a zero Result is Ok of the
// zero value of T.
package opt
