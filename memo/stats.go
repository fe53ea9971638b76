package memo

import "sync/atomic"

// Stats is a snapshot of a store's cumulative usage. Timestamps are clock
// readings in milliseconds.
type Stats struct {
	Created    int64
	LastAccess int64
	Hits       int64
	Uses       int64
	// Computations counts factory runs. Under single-flight several misses
	// can share one run, so it may be lower than Misses.
	Computations int64
}

// Misses is the number of lookups that found no usable entry.
func (s Stats) Misses() int64 {
	return s.Uses - s.Hits
}

func (s Stats) HitRatio() float64 {
	if s.Uses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Uses)
}

type counters struct {
	created    atomic.Int64
	lastAccess atomic.Int64
	hits       atomic.Int64
	uses       atomic.Int64

	computations atomic.Int64
}

func (c *counters) reset(now int64) {
	c.created.Store(now)
	c.lastAccess.Store(0)
	c.hits.Store(0)
	c.uses.Store(0)
	c.computations.Store(0)
}

func (c *counters) snapshot() Stats {
	return Stats{
		Created:    c.created.Load(),
		LastAccess: c.lastAccess.Load(),
		Hits:       c.hits.Load(),
		Uses:       c.uses.Load(),

		Computations: c.computations.Load(),
	}
}
