package promise

import (
	"context"
	"reflect"
	"time"
)

// Reflect views a Promise without knowing its element type.
// It is the boundary for callers observing a foreign Promise,
// e.g. one discovered through reflection or type erasure.
type Reflect interface {
	Context() context.Context
	UnderlyingType() reflect.Type
	Then(resolve func(data any) any) *Promise[any]
	Catch(reject func(err error) error) *Promise[any]
	AwaitAny() (any, error)
}

func (p *Promise[T]) Context() context.Context {
	return p.ctx
}

func (p *Promise[T]) UnderlyingType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (p *Promise[T]) Then(
	res func(data any) any,
) *Promise[any] {
	if res == nil {
		panic("res cannot be nil")
	}
	return WithContext(p.ctx, func(resolve func(any), reject func(error)) {
		if result, err := p.Await(); err != nil {
			reject(err)
		} else {
			resolve(res(result))
		}
	})
}

func (p *Promise[T]) Catch(
	rej func(err error) error,
) *Promise[any] {
	if rej == nil {
		panic("rej cannot be nil")
	}
	return WithContext(p.ctx, func(resolve func(any), reject func(error)) {
		if result, err := p.Await(); err != nil {
			reject(rej(err))
		} else {
			resolve(result)
		}
	})
}

func (p *Promise[T]) AwaitAny() (any, error) {
	return p.Await()
}

// Coerce converts an untyped Promise view back into a typed Promise.
// It rejects if the settled value is not assignable to T.
func Coerce[T any](promise Reflect) *Promise[T] {
	if promise == nil {
		panic("promise cannot be nil")
	}
	return WithContext(promise.Context(), func(resolve func(T), reject func(error)) {
		if data, err := promise.AwaitAny(); err != nil {
			reject(err)
		} else if data == nil {
			var t T
			resolve(t)
		} else {
			resolve(data.(T))
		}
	})
}

// Unwrap flattens a nested Promise into a Promise of its
// innermost value.
func Unwrap[T any](promise *Promise[*Promise[T]]) *Promise[T] {
	if promise == nil {
		panic("promise cannot be nil")
	}
	return WithContext(promise.ctx, func(resolve func(T), reject func(error)) {
		if pt, err := promise.Await(); err != nil {
			reject(err)
		} else if data, err := pt.Await(); err != nil {
			reject(err)
		} else {
			resolve(data)
		}
	})
}

// Return replaces the value of a fulfilled Promise.
// A rejection passes through unchanged.
func Return[A, B any](p *Promise[A], val B) *Promise[B] {
	return Then(p, func(A) B {
		return val
	})
}

// Erase discards the value of a fulfilled Promise, keeping
// only its settlement.
func Erase[A any](p *Promise[A]) *Promise[struct{}] {
	return Return(p, struct{}{})
}

// Empty returns a resolved Promise with no meaningful value.
func Empty() *Promise[struct{}] {
	return Resolve(struct{}{})
}

// RejectEmpty returns a rejected Promise with no meaningful value.
func RejectEmpty(err error) *Promise[struct{}] {
	return Reject[struct{}](err)
}

// Delay returns a Promise that resolves to the zero value
// after the duration elapses.
func Delay[T any](
	ctx   context.Context,
	delay time.Duration,
) *Promise[T] {
	return WithContext(ctx, func(resolve func(T), _ func(error)) {
		time.Sleep(delay)
		var t T
		resolve(t)
	})
}
