// Package clock provides the monotonic millisecond counter used for cache
// bookkeeping. Readings are only meaningful relative to each other; they are
// never converted to wall-clock or calendar time.
package clock

import (
	"sync/atomic"
	"time"
)

// Clock returns a non-negative, non-decreasing count of milliseconds since an
// arbitrary epoch.
type Clock interface {
	NowMillis() int64
}

var origin = time.Now()

type system struct{}

// System returns the process clock. Its epoch is package initialization and it
// reads Go's monotonic clock, so wall-clock adjustments do not affect it.
func System() Clock {
	return system{}
}

func (system) NowMillis() int64 {
	ms := time.Since(origin).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// Manual is a Clock advanced explicitly by the caller. The zero value reads 0.
type Manual struct {
	now atomic.Int64
}

func NewManual(start int64) *Manual {
	m := &Manual{}
	m.now.Store(start)
	return m
}

func (m *Manual) NowMillis() int64 {
	return m.now.Load()
}

// Advance moves the clock forward by d, truncated to whole milliseconds.
func (m *Manual) Advance(d time.Duration) {
	m.now.Add(d.Milliseconds())
}

// Set forces the reading to ms. Setting a value lower than the current one
// simulates a clock regression.
func (m *Manual) Set(ms int64) {
	m.now.Store(ms)
}
