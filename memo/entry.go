package memo

import "sync/atomic"

// entry is a stored outcome with its bookkeeping. The outcome never changes;
// recomputation stores a new entry.
type entry struct {
	created    int64
	lastAccess atomic.Int64
	hits       atomic.Int32
	outcome    any // call.Outcome[R] for the R of the call that made it
}

func newEntry(now int64, outcome any) *entry {
	e := &entry{created: now, outcome: outcome}
	e.lastAccess.Store(now)
	return e
}

func (e *entry) hit(now int64) {
	e.hits.Add(1)
	e.lastAccess.Store(now)
}
