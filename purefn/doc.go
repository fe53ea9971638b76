// Package purefn turns functions into memoized functions of the same shape.
//
// Memoize is not just a utility to add caching.
// It is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Would two calls with equal arguments always agree?"
//
// The Memoize family wraps a function so that every call goes through a
// memo.Store, keyed by the function's identity and its arguments. Anything
// the function captured is NOT part of the key: two closures over different
// captured values share results when called with equal arguments. Pass such
// values as arguments when they matter.
//
// Features:
//   - Memoize0 to Memoize5: typed, generic wrappers for common arities.
//   - Errors are memoized along with values.
//   - Expiration and invalidation are governed by the backing store.
//
// Example:
//
//	store := memo.New()
//	var fib func(int) (int, error)
//	fib = purefn.Memoize1(store, func(n int) (int, error) {
//		if n <= 1 {
//			return n, nil
//		}
//		a, _ := fib(n - 1)
//		b, _ := fib(n - 2)
//		return a + b, nil
//	})
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc)
// unless the store's expiration policy bounds how stale a result may get.
package purefn
