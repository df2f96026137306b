package promise

import (
	"context"
	"errors"
	"sync"

	"github.com/miruken-go/safe/internal"
)

// This code began as a lift of https://github.com/chebyrash/promise and
// evolved to support cancellation and shared fault coercion.

// Promise represents the eventual completion (or failure) of an
// asynchronous operation and its resulting value.
// The context is observed, never derived from, so a settled Promise
// holds no context resources of its own.
type Promise[T any] struct {
	value T
	err   error
	ctx   context.Context
	ch    chan struct{}
	once  sync.Once
}

// New runs the executor on a new goroutine and returns a Promise
// settled by the first call to resolve or reject.
// A panic in the executor rejects the Promise with the panic value,
// coerced to an error if necessary.
func New[T any](
	executor func(resolve func(T), reject func(error)),
) *Promise[T] {
	return WithContext(context.Background(), executor)
}

// WithContext behaves like New with the Promise tied to a context.
// Cancelling the context settles a pending Promise with CanceledError.
func WithContext[T any](
	ctx      context.Context,
	executor func(resolve func(T), reject func(error)),
) *Promise[T] {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	p := &Promise[T]{ctx: ctx, ch: make(chan struct{})}

	go func() {
		defer p.recoverPanic()
		executor(p.resolve, p.reject)
	}()

	return p
}

// Resolve creates a Promise in the resolved state.
func Resolve[T any](value T) *Promise[T] {
	return &Promise[T]{value: value}
}

// Reject creates a Promise in the rejected state.
func Reject[T any](err error) *Promise[T] {
	if err == nil {
		err = errRejectedWithNil
	}
	return &Promise[T]{err: err}
}

// Then transforms the value of a fulfilled Promise.
// A rejection passes through to the returned Promise unchanged.
func Then[A, B any](p *Promise[A], resolve func(A) B) *Promise[B] {
	if resolve == nil {
		panic("resolve cannot be nil")
	}
	return WithContext(p.ctx, func(internalResolve func(B), reject func(error)) {
		if result, err := p.Await(); err != nil {
			reject(err)
		} else {
			internalResolve(resolve(result))
		}
	})
}

// Catch transforms the error of a rejected Promise.
// A fulfillment passes through to the returned Promise unchanged.
func Catch[T any](p *Promise[T], reject func(err error) error) *Promise[T] {
	if reject == nil {
		panic("reject cannot be nil")
	}
	return WithContext(p.ctx, func(resolve func(T), internalReject func(error)) {
		if result, err := p.Await(); err != nil {
			internalReject(reject(err))
		} else {
			resolve(result)
		}
	})
}

// Await blocks until the Promise settles and returns the outcome.
// It can be called any number of times and always reports the
// same settlement.
func (p *Promise[T]) Await() (T, error) {
	if ch := p.ch; ch != nil {
		if ctx := p.ctx; ctx != nil {
			select {
			case <-ctx.Done():
				p.Cancel()
			case <-ch:
			}
		} else {
			<-ch
		}
	}
	return p.value, p.err
}

// Cancel settles a pending Promise with CanceledError.
// It has no effect on a settled Promise.
func (p *Promise[T]) Cancel() {
	p.once.Do(p.doCancel)
}

func (p *Promise[T]) resolve(value T) {
	p.once.Do(func() {
		if ctx := p.ctx; ctx != nil && ctx.Err() != nil {
			p.doCancel()
			return
		}
		p.value = value
		if ch := p.ch; ch != nil {
			close(ch)
		}
	})
}

func (p *Promise[T]) reject(err error) {
	p.once.Do(func() {
		if ctx := p.ctx; ctx != nil && ctx.Err() != nil {
			p.doCancel()
			return
		}
		if err == nil {
			err = errRejectedWithNil
		}
		p.err = err
		if ch := p.ch; ch != nil {
			close(ch)
		}
	})
}

func (p *Promise[T]) doCancel() {
	cause := context.Canceled
	if ctx := p.ctx; ctx != nil && ctx.Err() != nil {
		cause = context.Cause(ctx)
	}
	p.err = CanceledError{cause}
	if ch := p.ch; ch != nil {
		close(ch)
	}
}

func (p *Promise[T]) recoverPanic() {
	if r := recover(); r != nil {
		p.reject(internal.ToError(r))
	}
}

// All resolves when all promises have resolved with their values in
// input order, or rejects immediately upon any of the promises rejecting.
func All[T any](
	ctx      context.Context,
	promises ...*Promise[T],
) *Promise[[]T] {
	if len(promises) == 0 {
		panic("at least one promise required")
	}

	return WithContext(ctx, func(resolve func([]T), reject func(error)) {
		valsChan := make(chan indexed[T], len(promises))
		errsChan := make(chan error, len(promises))

		for i, p := range promises {
			observe(p, i, valsChan, errsChan)
		}

		results := make([]T, len(promises))
		for range promises {
			select {
			case val := <-valsChan:
				results[val.idx] = val.val
			case err := <-errsChan:
				reject(err)
				return
			}
		}
		resolve(results)
	})
}

// Race settles with the outcome of the first promise to settle.
func Race[T any](
	ctx      context.Context,
	promises ...*Promise[T],
) *Promise[T] {
	if len(promises) == 0 {
		panic("at least one promise required")
	}

	return WithContext(ctx, func(resolve func(T), reject func(error)) {
		valsChan := make(chan indexed[T], len(promises))
		errsChan := make(chan error, len(promises))

		for i, p := range promises {
			observe(p, i, valsChan, errsChan)
		}

		select {
		case val := <-valsChan:
			resolve(val.val)
		case err := <-errsChan:
			reject(err)
		}
	})
}

func observe[T any](
	p    *Promise[T],
	idx  int,
	vals chan<- indexed[T],
	errs chan<- error,
) {
	go func() {
		if val, err := p.Await(); err != nil {
			errs <- err
		} else {
			vals <- indexed[T]{val, idx}
		}
	}()
}

type indexed[T any] struct {
	val T
	idx int
}

// CanceledError reports the settlement of a canceled Promise.
type CanceledError struct {
	cause error
}

func (e CanceledError) Cause() error {
	return e.cause
}

func (e CanceledError) Error() string {
	if cause := e.cause; cause != nil {
		return "promise: canceled: " + cause.Error()
	}
	return "promise: canceled"
}

func (e CanceledError) Unwrap() error {
	return e.cause
}

var errRejectedWithNil = errors.New("promise: rejected with nil error")
