package chain

import (
	"context"

	"github.com/bodil/opt/pkg/opt"
)

// Chain wraps an opt.Result with a context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res opt.Result[T]
}

func Start[T any](ctx context.Context, r opt.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, opt.Ok(v))
}

func (c Chain[T]) Result() opt.Result[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return opt.Result[T].
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) opt.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Value())}
}

// ThenTry composes functions that return (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: opt.FromTuple(try(c.ctx, c.res.Value()))}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: opt.Ok(onOk(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the
// result. Nil callbacks are skipped.
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.Err())
		}
		return c
	}
	if onOk != nil {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// Or keeps the chain when it is Ok and falls back to alternative otherwise.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And keeps the first failure, otherwise continues with required.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value, delegating to the
// package-level Finally.
func (c Chain[T]) Finally(
	onOk func(context.Context, T) T,
	onErr func(context.Context, error) T,
	onAborted func(context.Context, error) T,
) T {
	return Finally[T, T](c, onOk, onErr, onAborted)
}

// Then chains a function that returns opt.Result[U].
func Then[T, U any](c Chain[T], onOk func(context.Context, T) opt.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: opt.AndThenResult(c.res, func(t T) opt.Result[U] { return onOk(c.ctx, t) }),
	}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: opt.AndThenResult(c.res, func(t T) opt.Result[U] { return opt.FromTuple(try(c.ctx, t)) }),
	}
}

// Map chains a pure transformation function.
func Map[T, U any](c Chain[T], onOk func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: opt.MapResult(c.res, func(t T) U { return onOk(c.ctx, t) }),
	}
}

// Finally collapses the chain into a final value via handlers. Failures
// caused by context cancellation or deadlines go to onAborted, all
// other failures to onErr.
func Finally[T, U any](c Chain[T],
	onOk func(context.Context, T) U,
	onErr func(context.Context, error) U,
	onAborted func(context.Context, error) U) U {

	if c.res.IsOk() {
		return onOk(c.ctx, c.res.Value())
	} else if c.res.IsAborted() {
		return onAborted(c.ctx, c.res.Err())
	} else {
		return onErr(c.ctx, c.res.Err())
	}
}
