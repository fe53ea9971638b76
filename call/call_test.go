package call_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/microcache/call"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(a int) (int, error) { return a * 2, nil }
func triple(a int) (int, error) { return a * 3, nil }

func TestOf_KeyEqualityByFunctionAndArgs(t *testing.T) {
	assert.Equal(t, call.Of1(double, 5).Key(), call.Of1(double, 5).Key())
	assert.NotEqual(t, call.Of1(double, 5).Key(), call.Of1(double, 6).Key())
	assert.NotEqual(t, call.Of1(double, 5).Key(), call.Of1(triple, 5).Key())

	// keys must be usable as map keys
	m := map[call.Key]int{}
	m[call.Of1(double, 5).Key()]++
	m[call.Of1(double, 5).Key()]++
	assert.Len(t, m, 1)
}

func makeAdder(offset int) func(int) (int, error) {
	return func(a int) (int, error) { return a + offset, nil }
}

func TestOf_ClosuresShareIdentity(t *testing.T) {
	var keys []call.Key
	var results []int
	for _, offset := range []int{1, 2} {
		c := call.Of1(makeAdder(offset), 5)
		keys = append(keys, c.Key())
		v, err := c.Invoke()
		require.NoError(t, err)
		results = append(results, v)
	}
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, []int{6, 7}, results)
}

type sample struct{ offset int }

func (s sample) Double(a int) (int, error) { return a*2 + s.offset, nil }

func TestOf_MethodValuesIgnoreReceiver(t *testing.T) {
	s1, s2 := sample{1}, sample{2}
	assert.Equal(t, call.Of1(s1.Double, 5).Key(), call.Of1(s2.Double, 5).Key())
}

func TestOf_ZeroArgsUseSentinel(t *testing.T) {
	c := call.Of0(func() (string, error) { return "x", nil })
	assert.Equal(t, call.NoArgs, c.Key().Args)
	assert.Nil(t, c.Args())
}

func TestOf_AllArities(t *testing.T) {
	sum := func(xs ...int) int {
		s := 0
		for _, x := range xs {
			s += x
		}
		return s
	}

	c2 := call.Of2(func(a, b int) (int, error) { return sum(a, b), nil }, 1, 2)
	c3 := call.Of3(func(a, b, c int) (int, error) { return sum(a, b, c), nil }, 1, 2, 3)
	c4 := call.Of4(func(a, b, c, d int) (int, error) { return sum(a, b, c, d), nil }, 1, 2, 3, 4)
	c5 := call.Of5(func(a int, b string, c bool, d float64, e int) (int, error) {
		return sum(a, len(b), e), nil
	}, 1, "ab", true, 1.5, 4)

	for _, tc := range []struct {
		c    call.Call[int]
		want int
		args []any
	}{
		{c2, 3, []any{1, 2}},
		{c3, 6, []any{1, 2, 3}},
		{c4, 10, []any{1, 2, 3, 4}},
		{c5, 7, []any{1, "ab", true, 1.5, 4}},
	} {
		v, err := tc.c.Invoke()
		require.NoError(t, err)
		assert.Equal(t, tc.want, v)
		assert.Equal(t, tc.args, tc.c.Args())
		assert.Equal(t, len(tc.args), tc.c.Key().Args.Len())
	}
}

func TestWithID_OverridesIdentity(t *testing.T) {
	id := call.NewFuncID("doubler")
	a := call.Of1(double, 5).WithID(id)
	b := call.Of1(triple, 5).WithID(id)
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "doubler", id.Name())
	assert.False(t, id.IsZero())
	assert.NotEqual(t, id, call.NewFuncID("doubler"))
}

func TestIdentityOf(t *testing.T) {
	id := call.IdentityOf(double)
	assert.True(t, strings.HasSuffix(id.Name(), "call_test.double"), id.Name())
	assert.Equal(t, id, call.IdentityOf(double))
	assert.True(t, call.FuncID{}.IsZero())

	assert.Panics(t, func() { call.IdentityOf(42) })
	var nilFn func() (int, error)
	assert.Panics(t, func() { call.IdentityOf(nilFn) })
}

func TestRun_CapturesOutcome(t *testing.T) {
	boom := errors.New("boom")
	failing := call.Of1(func(a int) (int, error) { return a, boom }, 3)

	out := failing.Run()
	assert.True(t, out.Failed())
	assert.Equal(t, 0, out.Value)
	v, err := out.Unwrap()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, v)

	out = call.Of1(double, 3).Run()
	assert.False(t, out.Failed())
	v, err = out.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}
