package opt

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Future[T] is a one-shot handle on a result being produced by another
// goroutine. It settles exactly once; Await and Done may be used any
// number of times after that.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	res       Result[T]
}

// Go runs f in a new goroutine through the same panic conversion as Try
// and returns a future that settles with its outcome.
func Go[T any](f func() (T, error)) *Future[T] {
	fu := &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
	go func() {
		defer close(fu.done)
		fu.res = Try(f)
	}()
	return fu
}

// Await blocks until the future settles or ctx is done, whichever comes
// first, and never panics. A ctx loss yields Err(ctx.Err()), which
// classifies as aborted; the future itself keeps running and may still
// be awaited again. An already settled future wins over a dead ctx.
func (f *Future[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-f.done:
		return f.res
	default:
	}
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return Err[T](ctx.Err())
	}
}

// Done returns a channel closed when the future settles, for use in
// select loops.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}
