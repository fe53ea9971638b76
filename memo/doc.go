// Package memo provides a process-local memoization cache.
//
// A Store maps a key to the outcome of the computation that produced it.
// GetOrMake and its arity variants derive the key from the function identity
// and the explicit arguments, return the stored outcome when it is still
// valid, and otherwise run the function, store what it returned, and return
// that. Errors are memoized exactly like values: every hit on a failed entry
// returns the same error until the entry expires or is invalidated.
//
// The computation runs without any lock held. Concurrent misses on the same
// key may therefore each run the function; the last one to finish owns the
// stored entry, and every caller gets the outcome it computed itself. Stores
// built WithSingleFlight share one in-flight computation per key instead.
//
// Entries expire by any combination of three rules, each disabled at zero:
//
//   - hit count: the entry is recomputed on the access that would be its Nth hit
//   - absolute TTL: measured from creation
//   - access TTL: measured from the last hit
//
// Expired entries are dropped lazily on access, or in bulk by Purge, which is
// never called implicitly (see StartJanitor).
//
// Example:
//
//	store := memo.New(memo.WithPolicy(memo.Policy{AbsoluteTTL: time.Minute}))
//	user, err := memo.GetOrMake1(store, loadUser, id)
package memo
