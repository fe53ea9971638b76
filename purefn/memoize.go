package purefn

import (
	"github.com/on-the-ground/microcache/call"
	"github.com/on-the-ground/microcache/memo"
)

// The identity of fn is resolved once, when it is wrapped. Keys are the same
// ones memo.GetOrMakeN derives, so wrapped and direct calls share entries.
// Every MemoizeN panics if fn is nil.

func Memoize0[R any](store *memo.Store, fn func() (R, error)) func() (R, error) {
	key := call.Key{Func: call.IdentityOf(fn), Args: call.NoArgs}
	return func() (R, error) {
		return memo.GetOrMakeWithKey(store, key, fn)
	}
}

func Memoize1[A1 comparable, R any](
	store *memo.Store,
	fn func(A1) (R, error),
) func(A1) (R, error) {
	id := call.IdentityOf(fn)
	return func(a1 A1) (R, error) {
		key := call.Key{Func: id, Args: call.Args1[A1]{A1: a1}}
		return memo.GetOrMakeWithKey(store, key, func() (R, error) {
			return fn(a1)
		})
	}
}

func Memoize2[A1, A2 comparable, R any](
	store *memo.Store,
	fn func(A1, A2) (R, error),
) func(A1, A2) (R, error) {
	id := call.IdentityOf(fn)
	return func(a1 A1, a2 A2) (R, error) {
		key := call.Key{Func: id, Args: call.Args2[A1, A2]{A1: a1, A2: a2}}
		return memo.GetOrMakeWithKey(store, key, func() (R, error) {
			return fn(a1, a2)
		})
	}
}

func Memoize3[A1, A2, A3 comparable, R any](
	store *memo.Store,
	fn func(A1, A2, A3) (R, error),
) func(A1, A2, A3) (R, error) {
	id := call.IdentityOf(fn)
	return func(a1 A1, a2 A2, a3 A3) (R, error) {
		key := call.Key{Func: id, Args: call.Args3[A1, A2, A3]{A1: a1, A2: a2, A3: a3}}
		return memo.GetOrMakeWithKey(store, key, func() (R, error) {
			return fn(a1, a2, a3)
		})
	}
}

func Memoize4[A1, A2, A3, A4 comparable, R any](
	store *memo.Store,
	fn func(A1, A2, A3, A4) (R, error),
) func(A1, A2, A3, A4) (R, error) {
	id := call.IdentityOf(fn)
	return func(a1 A1, a2 A2, a3 A3, a4 A4) (R, error) {
		key := call.Key{Func: id, Args: call.Args4[A1, A2, A3, A4]{A1: a1, A2: a2, A3: a3, A4: a4}}
		return memo.GetOrMakeWithKey(store, key, func() (R, error) {
			return fn(a1, a2, a3, a4)
		})
	}
}

func Memoize5[A1, A2, A3, A4, A5 comparable, R any](
	store *memo.Store,
	fn func(A1, A2, A3, A4, A5) (R, error),
) func(A1, A2, A3, A4, A5) (R, error) {
	id := call.IdentityOf(fn)
	return func(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (R, error) {
		key := call.Key{
			Func: id,
			Args: call.Args5[A1, A2, A3, A4, A5]{A1: a1, A2: a2, A3: a3, A4: a4, A5: a5},
		}
		return memo.GetOrMakeWithKey(store, key, func() (R, error) {
			return fn(a1, a2, a3, a4, a5)
		})
	}
}
