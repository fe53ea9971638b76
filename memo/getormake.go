package memo

import "github.com/on-the-ground/microcache/call"

// GetOrMakeWithKey returns the outcome stored under key, computing it with
// factory on a miss. key must be comparable; it is used as given, with no
// derivation.
func GetOrMakeWithKey[R any](s *Store, key any, factory func() (R, error)) (R, error) {
	return getOrMake(s, key, factory)
}

// GetOrMakeCall memoizes c under c.Key().
func GetOrMakeCall[R any](s *Store, c call.Call[R]) (R, error) {
	return getOrMake(s, c.Key(), c.Func())
}

func GetOrMake[R any](s *Store, fn func() (R, error)) (R, error) {
	if fn == nil {
		var zero R
		return zero, ErrNilFactory
	}
	return GetOrMakeCall(s, call.Of0(fn))
}

func GetOrMake1[A1 comparable, R any](s *Store, fn func(A1) (R, error), a1 A1) (R, error) {
	if fn == nil {
		var zero R
		return zero, ErrNilFactory
	}
	return GetOrMakeCall(s, call.Of1(fn, a1))
}

func GetOrMake2[A1, A2 comparable, R any](
	s *Store,
	fn func(A1, A2) (R, error),
	a1 A1, a2 A2,
) (R, error) {
	if fn == nil {
		var zero R
		return zero, ErrNilFactory
	}
	return GetOrMakeCall(s, call.Of2(fn, a1, a2))
}

func GetOrMake3[A1, A2, A3 comparable, R any](
	s *Store,
	fn func(A1, A2, A3) (R, error),
	a1 A1, a2 A2, a3 A3,
) (R, error) {
	if fn == nil {
		var zero R
		return zero, ErrNilFactory
	}
	return GetOrMakeCall(s, call.Of3(fn, a1, a2, a3))
}

func GetOrMake4[A1, A2, A3, A4 comparable, R any](
	s *Store,
	fn func(A1, A2, A3, A4) (R, error),
	a1 A1, a2 A2, a3 A3, a4 A4,
) (R, error) {
	if fn == nil {
		var zero R
		return zero, ErrNilFactory
	}
	return GetOrMakeCall(s, call.Of4(fn, a1, a2, a3, a4))
}

func GetOrMake5[A1, A2, A3, A4, A5 comparable, R any](
	s *Store,
	fn func(A1, A2, A3, A4, A5) (R, error),
	a1 A1, a2 A2, a3 A3, a4 A4, a5 A5,
) (R, error) {
	if fn == nil {
		var zero R
		return zero, ErrNilFactory
	}
	return GetOrMakeCall(s, call.Of5(fn, a1, a2, a3, a4, a5))
}
