package memo

import (
	"github.com/on-the-ground/microcache/clock"

	"go.uber.org/zap"
)

type options struct {
	policy       Policy
	logger       *zap.Logger
	clock        clock.Clock
	name         string
	shards       int
	singleFlight bool
	sink         chan<- Event
}

type Option func(*options)

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		clock:  clock.System(),
		shards: 1,
	}
}

// WithPolicy sets the initial expiration policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithName labels the store in log output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithShards splits the store into n independently locked shards. n <= 1
// keeps a single lock for the whole store.
func WithShards(n int) Option {
	return func(o *options) { o.shards = max(n, 1) }
}

// WithSingleFlight makes concurrent misses on the same key wait for a single
// computation and share its outcome.
func WithSingleFlight() Option {
	return func(o *options) { o.singleFlight = true }
}

// WithEventSink installs a channel receiving cache events. Sends never block;
// size the buffer for the expected event rate.
func WithEventSink(sink chan<- Event) Option {
	return func(o *options) { o.sink = sink }
}
