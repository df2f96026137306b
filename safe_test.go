package safe

import (
	"errors"
	"testing"

	"github.com/miruken-go/safe/promise"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestCall(t *testing.T) {
	t.Parallel()

	t.Run("Value", func(t *testing.T) {
		val, err := Call(func() int { return 42 })
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("PanicWithError", func(t *testing.T) {
		val, err := Call(func() int { panic(errBoom) })
		require.Same(t, errBoom, err)
		require.Zero(t, val)
	})

	t.Run("PanicWithString", func(t *testing.T) {
		val, err := Call(func() string { panic("funky") })
		require.EqualError(t, err, "funky")
		require.Zero(t, val)
	})

	t.Run("PanicWithNumber", func(t *testing.T) {
		_, err := Call(func() string { panic(19) })
		require.EqualError(t, err, "19")
	})

	t.Run("NilFunc", func(t *testing.T) {
		var fn func() int
		_, err := Call(fn)
		require.Error(t, err)
	})

	t.Run("Deterministic", func(t *testing.T) {
		fn := func() string { panic("boom") }
		_, err1 := Call(fn)
		_, err2 := Call(fn)
		require.Equal(t, err1, err2)
	})
}

func TestAsync(t *testing.T) {
	t.Run("Fulfilled", func(t *testing.T) {
		val, err := Async(func() *promise.Promise[string] {
			return promise.Resolve("hello")
		})
		require.NoError(t, err)
		require.Equal(t, "hello", val)
	})

	t.Run("Rejected", func(t *testing.T) {
		val, err := Async(func() *promise.Promise[string] {
			return promise.Reject[string](errBoom)
		})
		require.Same(t, errBoom, err)
		require.Zero(t, val)
	})

	t.Run("RejectedWithStringForm", func(t *testing.T) {
		_, err := Async(func() *promise.Promise[any] {
			return promise.New(func(resolve func(any), reject func(error)) {
				panic("Invalid User ID format.")
			})
		})
		require.EqualError(t, err, "Invalid User ID format.")
	})

	t.Run("PanicBeforePromise", func(t *testing.T) {
		val, err := Async(func() *promise.Promise[int] {
			panic("no promise for you")
		})
		require.EqualError(t, err, "no promise for you")
		require.Zero(t, val)
	})
}

func TestAwait(t *testing.T) {
	t.Run("AlreadySettled", func(t *testing.T) {
		val, err := Await(promise.Resolve(22))
		require.NoError(t, err)
		require.Equal(t, 22, val)
	})

	t.Run("Rejected", func(t *testing.T) {
		val, err := Await(promise.Reject[int](errBoom))
		require.Same(t, errBoom, err)
		require.Zero(t, val)
	})

	t.Run("Pending", func(t *testing.T) {
		d := promise.Defer[string]()
		go d.Resolve("later")
		val, err := Await(d.Promise())
		require.NoError(t, err)
		require.Equal(t, "later", val)
	})

	t.Run("AwaitTwice", func(t *testing.T) {
		p := promise.Resolve("same")
		v1, _ := Await(p)
		v2, _ := Await(p)
		require.Equal(t, v1, v2)
	})
}

func TestGo(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		val, err := Await(Go(func() int { return 7 }))
		require.NoError(t, err)
		require.Equal(t, 7, val)
	})

	t.Run("Panic", func(t *testing.T) {
		val, err := Await(Go(func() int { panic(errBoom) }))
		require.Same(t, errBoom, err)
		require.Zero(t, val)
	})

	t.Run("NilFunc", func(t *testing.T) {
		require.PanicsWithValue(t, "fn cannot be nil", func() {
			Go[int](nil)
		})
	})
}
