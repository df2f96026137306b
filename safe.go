// Package safe converts panics and promise rejections into explicit
// (value, error) results, so failures are inspected instead of thrown.
//
// Exactly one side of a result is ever populated. The error side is
// always a proper error: a fault raised with a non-error value is
// coerced using its string form, while error values keep their
// identity. Faults never escape a wrapper.
package safe

import (
	"github.com/miruken-go/safe/internal"
	"github.com/miruken-go/safe/promise"
)

// Call invokes fn in the current goroutine and returns its value.
// A panic raised by fn is captured and returned as the error.
func Call[T any](fn func() T) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = internal.ToError(r)
		}
	}()
	val = fn()
	return
}

// Async invokes fn, starting its computation, and blocks until the
// returned promise settles. A rejection, or a panic raised by fn
// itself, is captured and returned as the error.
func Async[T any](fn func() *promise.Promise[T]) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = internal.ToError(r)
		}
	}()
	val, err = fn().Await()
	return
}

// Await blocks until an already started promise settles and returns
// its outcome. Unlike Async it does not control when the computation
// starts, so several promises can be started before any is awaited.
func Await[T any](p *promise.Promise[T]) (val T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = internal.ToError(r)
		}
	}()
	val, err = p.Await()
	return
}

// Go runs fn on a new goroutine and returns a promise of its value.
// A panic raised by fn rejects the promise with the captured fault.
func Go[T any](fn func() T) *promise.Promise[T] {
	if fn == nil {
		panic("fn cannot be nil")
	}
	return promise.New(func(resolve func(T), _ func(error)) {
		resolve(fn())
	})
}
