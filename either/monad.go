// Package either provides a minimal disjoint union of two values.
// Throughout this module the left side carries a failure and the
// right side a success, so a captured outcome is an Either[error, T].
package either

import "fmt"

// Either holds exactly one of two values, left or right.
type Either[L, R any] interface{}

type (
	left[L any] struct {
		val L
	}

	right[R any] struct {
		val R
	}
)

// Constructors

// Left places val on the failure side.
func Left[L any](val L) left[L] {
	return left[L]{val}
}

// Right places val on the success side.
func Right[R any](val R) right[R] {
	return right[R]{val}
}

// Try lifts a (value, error) pair into an Either, placing a non-nil
// error on the left and the value on the right otherwise.
func Try[R any](val R, err error) Either[error, R] {
	if err != nil {
		return left[error]{err}
	}
	return right[R]{val}
}

// Combinators

// Seq discards the first Either and returns the second.
func Seq[L, R, R2 any](_ Either[L, R], e Either[L, R2]) Either[L, R2] {
	return e
}

// Map transforms the success side of an Either.
// A failure passes through untouched.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if f == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case right[R]:
		return right[R2]{f(v.val)}
	case left[L]:
		return v
	}
	panic(invalidEither(e))
}

// MapLeft transforms the failure side of an Either.
// A success passes through untouched.
func MapLeft[L, L2, R any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if f == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case left[L]:
		return left[L2]{f(v.val)}
	case right[R]:
		return v
	}
	panic(invalidEither(e))
}

// Apply applies a lifted function to the success side of an Either.
func Apply[L, R, R2 any](e Either[L, func(R) R2], f Either[L, R]) Either[L, R2] {
	switch v := e.(type) {
	case right[func(R) R2]:
		return Map[L, R, R2](f, v.val)
	case left[L]:
		return v
	}
	panic(invalidEither(e))
}

// FlatMap transforms the success side of an Either into a new
// Either, short-circuiting on the first failure in a chain.
func FlatMap[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if f == nil {
		panic("f cannot be nil")
	}
	switch v := e.(type) {
	case right[R]:
		return f(v.val)
	case left[L]:
		return v
	}
	panic(invalidEither(e))
}

// Fold reduces an Either to a single value, applying the function
// for whichever side is populated.
func Fold[L, R, A any](e Either[L, R], l func(L) A, r func(R) A) A {
	var a A
	switch v := e.(type) {
	case left[L]:
		if l != nil {
			a = l(v.val)
		}
	case right[R]:
		if r != nil {
			a = r(v.val)
		}
	default:
		panic(invalidEither(e))
	}
	return a
}

// Match visits the populated side of an Either.
func Match[L, R any](e Either[L, R], l func(L), r func(R)) {
	switch v := e.(type) {
	case left[L]:
		if l != nil {
			l(v.val)
		}
	case right[R]:
		if r != nil {
			r(v.val)
		}
	default:
		panic(invalidEither(e))
	}
}

func invalidEither(e any) string {
	return fmt.Sprintf("invalid either: %+v", e)
}
