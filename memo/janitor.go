package memo

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Janitor purges a store on a fixed interval.
type Janitor struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartJanitor purges s every interval until ctx is done or Stop is called.
// It panics if interval is not positive.
func StartJanitor(ctx context.Context, s *Store, interval time.Duration) *Janitor {
	if interval <= 0 {
		panic("janitor interval should be greater than 0")
	}
	ctx, cancel := context.WithCancel(ctx)
	j := &Janitor{cancel: cancel, done: make(chan struct{})}
	ready := make(chan struct{})

	go func() {
		defer close(j.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		close(ready)
		for {
			select {
			case <-ticker.C:
				s.Purge()
			case <-ctx.Done():
				s.logger.Debug("janitor stopped", zap.Error(ctx.Err()))
				return
			}
		}
	}()

	<-ready
	return j
}

// Stop ends the purge loop and waits for it to exit. It is safe to call more
// than once.
func (j *Janitor) Stop() {
	j.once.Do(j.cancel)
	<-j.done
}

// Done is closed once the purge loop has exited.
func (j *Janitor) Done() <-chan struct{} {
	return j.done
}
