package memo

import (
	"hash/maphash"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

type shard struct {
	mu      sync.Mutex
	entries map[any]*entry

	// nil unless the store was built WithSingleFlight
	group   *singleflight.Group
	flights map[any]*flightName
	nextID  uint64
}

// flightName interns a key into the string singleflight groups by. Keys are
// matched with ==, so equal keys share a name and distinct keys never do.
type flightName struct {
	name string
	refs int
}

func newShard(singleFlight bool) *shard {
	sh := &shard{entries: make(map[any]*entry)}
	if singleFlight {
		sh.group = &singleflight.Group{}
		sh.flights = make(map[any]*flightName)
	}
	return sh
}

// put stores e under key and reports whether it replaced an entry.
func (sh *shard) put(key any, e *entry) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, replaced := sh.entries[key]
	sh.entries[key] = e
	return replaced
}

func (sh *shard) remove(key any) bool {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	_, found := sh.entries[key]
	delete(sh.entries, key)
	return found
}

// share runs fn once for all concurrent callers passing an equal key and
// hands each of them its result.
func (sh *shard) share(key any, fn func() any) any {
	name := sh.joinFlight(key)
	defer sh.leaveFlight(key)
	shared, _, _ := sh.group.Do(name, func() (any, error) {
		return fn(), nil
	})
	return shared
}

func (sh *shard) joinFlight(key any) string {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	f, ok := sh.flights[key]
	if !ok {
		sh.nextID++
		f = &flightName{name: strconv.FormatUint(sh.nextID, 36)}
		sh.flights[key] = f
	}
	f.refs++
	return f.name
}

func (sh *shard) leaveFlight(key any) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	f := sh.flights[key]
	if f.refs--; f.refs == 0 {
		delete(sh.flights, key)
	}
}

// purge removes every entry check reports as expired and returns how many
// were removed and whether the shard was emptied wholesale.
func (sh *shard) purge(check func(*entry) expiry) (removed int, clearedAll bool) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	size := len(sh.entries)
	if size == 0 {
		return 0, false
	}
	var stale []any
	for k, e := range sh.entries {
		if check(e) != fresh {
			stale = append(stale, k)
		}
	}
	switch len(stale) {
	case 0:
		return 0, false
	case size:
		sh.entries = make(map[any]*entry)
		return size, true
	default:
		for _, k := range stale {
			delete(sh.entries, k)
		}
		return len(stale), false
	}
}

func (sh *shard) clear() int {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	n := len(sh.entries)
	sh.entries = make(map[any]*entry)
	return n
}

// shardIndex maps keys that are == to the same shard. String keys hash with
// xxhash; everything else goes through the runtime hash of the dynamic value,
// which panics for unhashable keys just as a map would.
func shardIndex(seed maphash.Seed, key any, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	}
	var h uint64
	if s, ok := key.(string); ok {
		h = xxhash.Sum64String(s)
	} else {
		h = maphash.Comparable(seed, key)
	}
	return int(h % uint64(numShards))
}
