// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of opt.Result[T] values under a context.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between chains by outcome
// - Finally: collapse to a concrete value via ok/err/aborted handlers
//
// Type-changing steps are package functions (Then, ThenTry, Map,
// Finally) because methods cannot introduce new type parameters.
// Chains short-circuit on the first failure; the failed result rides
// through the remaining steps unchanged.
package chain
