package safe

import (
	"context"
	"sync"

	"github.com/miruken-go/safe/either"
	"github.com/miruken-go/safe/promise"
)

// Success returns a new successful result.
func Success[R any](val R) either.Either[error, R] {
	return either.Right(val)
}

// Failure returns a new failed result.
func Failure[R any](err error) either.Either[error, R] {
	return either.Left(err)
}

// Outcome returns the value or error captured in a result.
func Outcome[R any](result either.Either[error, R]) (val R, err error) {
	either.Match(result,
		func(e error) { err = e },
		func(v R) { val = v })
	return
}

// Settle awaits every promise and resolves with each outcome captured
// independently in input order. It never rejects; a failed promise
// occupies its slot as a failed result without disturbing the others.
func Settle[T any](
	ctx      context.Context,
	promises ...*promise.Promise[T],
) *promise.Promise[[]either.Either[error, T]] {
	if len(promises) == 0 {
		panic("at least one promise required")
	}

	return promise.WithContext(ctx, func(
		resolve func([]either.Either[error, T]), _ func(error),
	) {
		results := make([]either.Either[error, T], len(promises))

		var waitGroup sync.WaitGroup
		waitGroup.Add(len(promises))

		for i, p := range promises {
			go func(idx int, p *promise.Promise[T]) {
				defer waitGroup.Done()
				results[idx] = either.Try(Await(p))
			}(i, p)
		}

		waitGroup.Wait()
		resolve(results)
	})
}
