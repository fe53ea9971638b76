package memo

import (
	"errors"
	"fmt"
	"hash/maphash"
	"time"

	"github.com/on-the-ground/microcache/call"
	"github.com/on-the-ground/microcache/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNilFactory is returned when a get-or-compute call is given no function.
var ErrNilFactory = errors.New("memo: nil factory")

// Store is a memoization cache. It is safe for concurrent use. A Store is
// owned by whoever constructs it; there is no package-level instance.
type Store struct {
	id     uuid.UUID
	name   string
	clock  clock.Clock
	logger *zap.Logger
	sink   chan<- Event

	shards []*shard
	seed   maphash.Seed

	limits thresholds
	stats  counters
}

func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		id:    uuid.New(),
		name:  o.name,
		clock: o.clock,
		sink:  o.sink,
		seed:  maphash.MakeSeed(),
	}
	s.logger = o.logger.With(zap.Stringer("cache_id", s.id))
	if s.name != "" {
		s.logger = s.logger.With(zap.String("cache_name", s.name))
	}
	s.shards = make([]*shard, o.shards)
	for i := range s.shards {
		s.shards[i] = newShard(o.singleFlight)
	}
	s.limits.set(o.policy)
	s.stats.reset(s.clock.NowMillis())
	return s
}

func (s *Store) ID() uuid.UUID { return s.id }
func (s *Store) Name() string  { return s.name }

func (s *Store) Policy() Policy { return s.limits.policy() }

// SetPolicy replaces all three expiration rules. Entries already stored are
// judged by the new rules from their next access on.
func (s *Store) SetPolicy(p Policy) { s.limits.set(p) }

func (s *Store) AbsoluteTTL() time.Duration { return s.limits.policy().AbsoluteTTL }
func (s *Store) AccessTTL() time.Duration   { return s.limits.policy().AccessTTL }
func (s *Store) HitCountThreshold() int32   { return s.limits.hits.Load() }

func (s *Store) SetAbsoluteTTL(d time.Duration) { s.limits.absolute.Store(toTicks(d)) }
func (s *Store) SetAccessTTL(d time.Duration)   { s.limits.access.Store(toTicks(d)) }
func (s *Store) SetHitCountThreshold(n int32)   { s.limits.hits.Store(max(n, 0)) }

func (s *Store) Stats() Stats { return s.stats.snapshot() }

// ResetStats restarts the cumulative statistics. Stored entries are kept.
func (s *Store) ResetStats() { s.stats.reset(s.clock.NowMillis()) }

func (s *Store) route(key any) *shard {
	return s.shards[shardIndex(s.seed, key, len(s.shards))]
}

// getOrMake is the get-or-compute protocol shared by every public entry point.
func getOrMake[R any](s *Store, key any, factory func() (R, error)) (R, error) {
	if factory == nil {
		var zero R
		return zero, ErrNilFactory
	}
	s.stats.uses.Add(1)

	sh := s.route(key)
	if out, ok := lookup[R](s, sh, key); ok {
		return out.Unwrap()
	}

	produce := func() any { return call.Capture(factory) }
	if sh.group != nil {
		shared := sh.share(key, func() any {
			return s.store(sh, key, produce)
		})
		if out, ok := shared.(call.Outcome[R]); ok {
			return out.Unwrap()
		}
		// The flight was led by a caller expecting another result type for
		// this key. Compute our own outcome; it replaces the foreign one.
		s.logger.Warn("shared outcome type mismatch", zap.Any("key", key))
	}
	out := s.store(sh, key, produce).(call.Outcome[R])
	return out.Unwrap()
}

type lookupResult uint8

const (
	lookupMiss lookupResult = iota
	lookupHit
	lookupMismatch
	lookupExpired
)

// lookup returns the stored outcome for key if it is present, of type R and
// not expired. Anything else found under key is removed.
func lookup[R any](s *Store, sh *shard, key any) (call.Outcome[R], bool) {
	now := s.clock.NowMillis()

	var (
		out    call.Outcome[R]
		e      *entry
		reason expiry
	)
	// A key that cannot be hashed panics inside; the deferred unlock keeps
	// the shard usable afterwards.
	result := func() lookupResult {
		sh.mu.Lock()
		defer sh.mu.Unlock()

		var found bool
		if e, found = sh.entries[key]; !found {
			return lookupMiss
		}
		var ok bool
		if out, ok = e.outcome.(call.Outcome[R]); !ok {
			delete(sh.entries, key)
			return lookupMismatch
		}
		if reason = s.limits.check(e, now); reason != fresh {
			delete(sh.entries, key)
			return lookupExpired
		}
		return lookupHit
	}()

	switch result {
	case lookupHit:
		e.hit(now)
		s.stats.hits.Add(1)
		s.stats.lastAccess.Store(now)
		s.emit(EventHit, key, 1)
		return out, true
	case lookupMismatch:
		s.logger.Warn("evicted entry with unexpected outcome type",
			zap.Any("key", key),
			zap.String("stored", typeName(e.outcome)),
			zap.String("expected", typeName(call.Outcome[R]{})),
		)
		s.emit(EventEvicted, key, 1)
	case lookupExpired:
		s.logExpiry(key, reason)
		s.emit(EventExpired, key, 1)
	}
	return call.Outcome[R]{}, false
}

// store runs produce without holding any lock and stores its outcome under
// key, replacing whatever a concurrent miss may have stored meanwhile.
func (s *Store) store(sh *shard, key any, produce func() any) any {
	out := produce()
	s.stats.computations.Add(1)

	now := s.clock.NowMillis()
	e := newEntry(now, out)
	s.stats.lastAccess.Store(now)

	replaced := sh.put(key, e)

	s.logger.Debug("computed entry", zap.Any("key", key), zap.Bool("replaced", replaced))
	s.emit(EventMiss, key, 1)
	return out
}

func (s *Store) logExpiry(key any, reason expiry) {
	if reason == clockRegressed {
		s.logger.Warn("clock went backwards, expiring entry", zap.Any("key", key))
		return
	}
	s.logger.Debug("expired entry", zap.Any("key", key), zap.Stringer("reason", reason))
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// InvalidateKey removes the entry stored under key, if any.
func (s *Store) InvalidateKey(key any) {
	if s.route(key).remove(key) {
		s.emit(EventInvalidated, key, 1)
	}
}

// Clear removes every entry. Statistics are kept.
func (s *Store) Clear() {
	removed := 0
	for _, sh := range s.shards {
		removed += sh.clear()
	}
	s.logger.Debug("cleared", zap.Int("removed", removed))
	s.emit(EventCleared, nil, removed)
}

// Invalidate is Clear.
func (s *Store) Invalidate() { s.Clear() }

// Purge removes every expired entry in one pass per shard and returns how many
// were removed. It is never called by the store itself.
func (s *Store) Purge() int {
	now := s.clock.NowMillis()
	regressed := 0
	check := func(e *entry) expiry {
		reason := s.limits.check(e, now)
		if reason == clockRegressed {
			regressed++
		}
		return reason
	}

	removed, cleared := 0, 0
	for _, sh := range s.shards {
		n, all := sh.purge(check)
		removed += n
		if all {
			cleared++
		}
	}
	if regressed > 0 {
		s.logger.Warn("clock went backwards, expired entries on purge", zap.Int("count", regressed))
	}
	s.logger.Debug("purged",
		zap.Int("removed", removed),
		zap.Int("shards_cleared", cleared),
	)
	s.emit(EventPurged, nil, removed)
	return removed
}

// Len returns the number of stored entries, expired or not.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		n += len(sh.entries)
		sh.mu.Unlock()
	}
	return n
}

// Contains reports whether an unexpired entry is stored under key. It neither
// counts as a use nor removes anything.
func (s *Store) Contains(key any) bool {
	now := s.clock.NowMillis()
	sh := s.route(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	e, found := sh.entries[key]
	return found && s.limits.check(e, now) == fresh
}
