// Package call describes deferred computations: a function identity, the
// arguments it was called with, and a closure that performs the call.
//
// A Call's Key is what the cache stores results under. It is built only from
// the function identity and the explicitly passed arguments; anything the
// function captured is left out by construction. If captured state must
// distinguish results, pass it as an extra argument.
package call

import "fmt"

// Key is the derived cache key of a Call. Two Calls with the same FuncID and
// equal argument tuples have equal Keys.
type Key struct {
	Func FuncID
	Args Tuple
}

func (k Key) String() string {
	if k.Args == nil {
		return k.Func.String() + "[]"
	}
	return fmt.Sprintf("%s%v", k.Func, k.Args.Slice())
}

// Call is a computation bound to its arguments.
type Call[R any] struct {
	id   FuncID
	args Tuple
	fn   func() (R, error)
}

func newCall[R any](fn any, args Tuple, invoke func() (R, error)) Call[R] {
	return Call[R]{id: IdentityOf(fn), args: args, fn: invoke}
}

func Of0[R any](fn func() (R, error)) Call[R] {
	return newCall(fn, NoArgs, fn)
}

func Of1[A1 comparable, R any](fn func(A1) (R, error), a1 A1) Call[R] {
	return newCall(fn, Args1[A1]{a1}, func() (R, error) {
		return fn(a1)
	})
}

func Of2[A1, A2 comparable, R any](fn func(A1, A2) (R, error), a1 A1, a2 A2) Call[R] {
	return newCall(fn, Args2[A1, A2]{a1, a2}, func() (R, error) {
		return fn(a1, a2)
	})
}

func Of3[A1, A2, A3 comparable, R any](
	fn func(A1, A2, A3) (R, error),
	a1 A1, a2 A2, a3 A3,
) Call[R] {
	return newCall(fn, Args3[A1, A2, A3]{a1, a2, a3}, func() (R, error) {
		return fn(a1, a2, a3)
	})
}

func Of4[A1, A2, A3, A4 comparable, R any](
	fn func(A1, A2, A3, A4) (R, error),
	a1 A1, a2 A2, a3 A3, a4 A4,
) Call[R] {
	return newCall(fn, Args4[A1, A2, A3, A4]{a1, a2, a3, a4}, func() (R, error) {
		return fn(a1, a2, a3, a4)
	})
}

func Of5[A1, A2, A3, A4, A5 comparable, R any](
	fn func(A1, A2, A3, A4, A5) (R, error),
	a1 A1, a2 A2, a3 A3, a4 A4, a5 A5,
) Call[R] {
	return newCall(fn, Args5[A1, A2, A3, A4, A5]{a1, a2, a3, a4, a5}, func() (R, error) {
		return fn(a1, a2, a3, a4, a5)
	})
}

// WithID returns a copy of c identified by id instead of its implicit
// identity.
func (c Call[R]) WithID(id FuncID) Call[R] {
	c.id = id
	return c
}

func (c Call[R]) ID() FuncID {
	return c.id
}

// Key derives the cache key of c.
func (c Call[R]) Key() Key {
	args := c.args
	if args == nil || args.Len() == 0 {
		args = NoArgs
	}
	return Key{Func: c.id, Args: args}
}

// Args returns the bound arguments in order; nil for zero-argument calls.
func (c Call[R]) Args() []any {
	if c.args == nil {
		return nil
	}
	return c.args.Slice()
}

// Func returns the zero-argument closure performing the call.
func (c Call[R]) Func() func() (R, error) {
	return c.fn
}

// Invoke performs the call directly, bypassing any cache.
func (c Call[R]) Invoke() (R, error) {
	return c.fn()
}

// Run performs the call and captures its outcome.
func (c Call[R]) Run() Outcome[R] {
	return Capture(c.fn)
}
