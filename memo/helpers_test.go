package memo_test

import (
	"os"
	"testing"

	"github.com/on-the-ground/microcache/clock"
	"github.com/on-the-ground/microcache/memo"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

func newTestStore(t *testing.T, opts ...memo.Option) *memo.Store {
	t.Helper()
	logger := newTestLogger()
	t.Cleanup(func() { _ = logger.Sync() })
	return memo.New(append([]memo.Option{memo.WithLogger(logger), memo.WithName(t.Name())}, opts...)...)
}

func newManualStore(t *testing.T, opts ...memo.Option) (*memo.Store, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(1000)
	return newTestStore(t, append([]memo.Option{memo.WithClock(clk)}, opts...)...), clk
}

// counter returns a factory that counts its invocations.
func counter[R any](v R) (func() (R, error), *int) {
	n := 0
	return func() (R, error) {
		n++
		return v, nil
	}, &n
}
