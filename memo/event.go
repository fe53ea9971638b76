package memo

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type EventKind uint8

const (
	EventHit EventKind = iota + 1
	EventMiss
	EventExpired
	// EventEvicted reports an entry dropped because its outcome did not have
	// the type the caller expected.
	EventEvicted
	EventInvalidated
	EventCleared
	EventPurged
)

func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventExpired:
		return "expired"
	case EventEvicted:
		return "evicted"
	case EventInvalidated:
		return "invalidated"
	case EventCleared:
		return "cleared"
	case EventPurged:
		return "purged"
	default:
		return "unknown"
	}
}

// Event is sent to the sink installed WithEventSink. Key is nil for bulk
// events, which report the number of removed entries in Count. The wall-clock
// TimeSpan is for observers only; expiration never looks at it.
type Event struct {
	Kind  EventKind
	Key   any
	Count int
	timespan.TimeSpan
}

const epsilon = time.Millisecond

func stampNow() timespan.TimeSpan {
	t := time.Now()
	return timespan.BetweenTimes(t.Add(-1*epsilon), t.Add(epsilon))
}

// emit never blocks; events are dropped when the sink is full.
func (s *Store) emit(kind EventKind, key any, count int) {
	if s.sink == nil {
		return
	}
	select {
	case s.sink <- Event{Kind: kind, Key: key, Count: count, TimeSpan: stampNow()}:
	default:
	}
}
