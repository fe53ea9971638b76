package memo

import (
	"sync/atomic"
	"time"
)

// Policy configures expiration. A zero or negative field disables its rule.
// TTLs are tracked in whole milliseconds; a positive TTL below one millisecond
// rounds up to one.
type Policy struct {
	AbsoluteTTL time.Duration
	AccessTTL   time.Duration
	HitCount    int32
}

type expiry uint8

const (
	fresh expiry = iota
	expiredByHits
	expiredByAge
	expiredByIdle
	clockRegressed
)

func (e expiry) String() string {
	switch e {
	case fresh:
		return "fresh"
	case expiredByHits:
		return "hit_count"
	case expiredByAge:
		return "absolute_ttl"
	case expiredByIdle:
		return "access_ttl"
	case clockRegressed:
		return "clock_regression"
	default:
		return "unknown"
	}
}

func toTicks(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	if ms := d.Milliseconds(); ms > 0 {
		return ms
	}
	return 1
}

// thresholds holds the live policy of a store. Each field is read and written
// independently.
type thresholds struct {
	absolute atomic.Int64
	access   atomic.Int64
	hits     atomic.Int32
}

func (t *thresholds) set(p Policy) {
	t.absolute.Store(toTicks(p.AbsoluteTTL))
	t.access.Store(toTicks(p.AccessTTL))
	t.hits.Store(max(p.HitCount, 0))
}

func (t *thresholds) policy() Policy {
	return Policy{
		AbsoluteTTL: time.Duration(t.absolute.Load()) * time.Millisecond,
		AccessTTL:   time.Duration(t.access.Load()) * time.Millisecond,
		HitCount:    t.hits.Load(),
	}
}

// check evaluates the rules in order: hit count, absolute age, idle time. A
// negative age means the clock went backwards and is reported as expired.
func (t *thresholds) check(e *entry, now int64) expiry {
	if limit := t.hits.Load(); limit > 0 && e.hits.Load() >= limit {
		return expiredByHits
	}
	if ttl := t.absolute.Load(); ttl > 0 {
		age := now - e.created
		if age < 0 {
			return clockRegressed
		}
		if age >= ttl {
			return expiredByAge
		}
	}
	if ttl := t.access.Load(); ttl > 0 {
		idle := now - e.lastAccess.Load()
		if idle < 0 {
			return clockRegressed
		}
		if idle >= ttl {
			return expiredByIdle
		}
	}
	return fresh
}
