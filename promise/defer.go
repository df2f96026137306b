package promise

import "context"

// Deferred represents a computation that settles a Promise
// from outside an executor.
type Deferred[T any] struct {
	promise *Promise[T]
}

// Defer creates a Deferred computation.
func Defer[T any]() Deferred[T] {
	p := &Promise[T]{ch: make(chan struct{})}
	return Deferred[T]{p}
}

// DeferWithContext creates a Deferred computation in a context.
// Cancelling the context settles a pending Promise with CanceledError.
func DeferWithContext[T any](ctx context.Context) Deferred[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	d := Defer[T]()
	d.promise.ctx = ctx
	return d
}

func (d Deferred[T]) Promise() *Promise[T] {
	return d.promise
}

func (d Deferred[T]) Resolve(value T) {
	d.promise.resolve(value)
}

func (d Deferred[T]) Reject(err error) {
	d.promise.reject(err)
}
