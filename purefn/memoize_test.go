package purefn_test

import (
	"errors"
	"testing"
	"time"

	"github.com/on-the-ground/microcache/clock"
	"github.com/on-the-ground/microcache/memo"
	"github.com/on-the-ground/microcache/purefn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoize0(t *testing.T) {
	count := 0
	fn := purefn.Memoize0(memo.New(), func() (string, error) {
		count++
		return "constant", nil
	})

	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, "constant", v)
	v, _ = fn() // cached
	assert.Equal(t, "constant", v)
	assert.Equal(t, 1, count)
}

func TestMemoize1(t *testing.T) {
	count := 0
	fn := purefn.Memoize1(memo.New(), func(i int) (int, error) {
		count++
		return i * 2, nil
	})

	v, _ := fn(2)
	assert.Equal(t, 4, v)
	v, _ = fn(2)
	assert.Equal(t, 4, v)
	v, _ = fn(3)
	assert.Equal(t, 6, v)
	assert.Equal(t, 2, count)
}

func TestMemoize2(t *testing.T) {
	count := 0
	fn := purefn.Memoize2(memo.New(), func(a, b int) (int, error) {
		count++
		return a + b, nil
	})

	v, _ := fn(2, 3)
	assert.Equal(t, 5, v)
	v, _ = fn(2, 3)
	assert.Equal(t, 5, v)
	assert.Equal(t, 1, count)
}

func TestMemoize3(t *testing.T) {
	count := 0
	fn := purefn.Memoize3(memo.New(), func(a, b, c int) (int, error) {
		count++
		return a * b * c, nil
	})

	v, _ := fn(2, 3, 4)
	assert.Equal(t, 24, v)
	v, _ = fn(2, 3, 4)
	assert.Equal(t, 24, v)
	assert.Equal(t, 1, count)
}

func TestMemoize4(t *testing.T) {
	count := 0
	fn := purefn.Memoize4(memo.New(), func(a, b, c, d int) (int, error) {
		count++
		return a + b + c + d, nil
	})

	v, _ := fn(1, 2, 3, 4)
	assert.Equal(t, 10, v)
	v, _ = fn(1, 2, 3, 4)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, count)
}

func TestMemoize5(t *testing.T) {
	count := 0
	fn := purefn.Memoize5(memo.New(), func(a, b, c, d int, unit string) (string, error) {
		count++
		return unit, nil
	})

	v, _ := fn(1, 2, 3, 4, "ms")
	assert.Equal(t, "ms", v)
	v, _ = fn(1, 2, 3, 4, "ms")
	assert.Equal(t, "ms", v)
	v, _ = fn(1, 2, 3, 4, "s")
	assert.Equal(t, "s", v)
	assert.Equal(t, 2, count)
}

func TestMemoize_SharesEntriesWithGetOrMake(t *testing.T) {
	store := memo.New()
	count := 0
	square := func(i int) (int, error) {
		count++
		return i * i, nil
	}

	wrapped := purefn.Memoize1(store, square)
	v, _ := wrapped(4)
	assert.Equal(t, 16, v)
	v, err := memo.GetOrMake1(store, square, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, v)
	assert.Equal(t, 1, count)
}

func TestMemoize_Recursive(t *testing.T) {
	store := memo.New()
	calls := 0
	var fib func(int) (int, error)
	fib = purefn.Memoize1(store, func(n int) (int, error) {
		calls++
		if n <= 1 {
			return n, nil
		}
		a, err := fib(n - 1)
		if err != nil {
			return 0, err
		}
		b, err := fib(n - 2)
		return a + b, err
	})

	v, err := fib(40)
	require.NoError(t, err)
	assert.Equal(t, 102334155, v)
	assert.Equal(t, 41, calls)
}

func TestMemoize_ErrorsAndExpiry(t *testing.T) {
	clk := clock.NewManual(0)
	store := memo.New(memo.WithClock(clk), memo.WithPolicy(memo.Policy{AccessTTL: time.Second}))
	errOdd := errors.New("odd")
	count := 0
	half := purefn.Memoize1(store, func(i int) (int, error) {
		count++
		if i%2 != 0 {
			return 0, errOdd
		}
		return i / 2, nil
	})

	_, err := half(3)
	assert.ErrorIs(t, err, errOdd)
	_, err = half(3)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 1, count)

	clk.Advance(time.Second)
	_, err = half(3)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 2, count)
}

type point struct {
	X, Y float64
}

func TestMemoize_StructArguments(t *testing.T) {
	count := 0
	dist := purefn.Memoize2(memo.New(), func(p1, p2 point) (float64, error) {
		count++
		dx := p1.X - p2.X
		dy := p1.Y - p2.Y
		return dx*dx + dy*dy, nil
	})

	v, _ := dist(point{0, 0}, point{3, 4})
	assert.Equal(t, 25.0, v)
	v, _ = dist(point{0, 0}, point{3, 4})
	assert.Equal(t, 25.0, v)
	assert.Equal(t, 1, count)
}

func TestMemoize_PanicsOnUnhashableArgument(t *testing.T) {
	store := memo.New()
	fn := purefn.Memoize1(store, func(v any) (int, error) {
		return 1, nil
	})

	assert.Panics(t, func() { _, _ = fn([]int{1}) })

	// the store stays usable after the panic
	v, err := fn("hashable")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestMemoize_PanicsOnNilFunction(t *testing.T) {
	assert.Panics(t, func() {
		purefn.Memoize1[int, int](memo.New(), nil)
	})
}
