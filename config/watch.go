package config

import (
	"context"

	"github.com/on-the-ground/microcache/memo"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// StartJanitor starts periodic purging of store when c sets a janitor
// interval. It returns nil otherwise.
func (c Config) StartJanitor(ctx context.Context, store *memo.Store) *memo.Janitor {
	if c.JanitorInterval <= 0 {
		return nil
	}
	return memo.StartJanitor(ctx, store, c.JanitorInterval)
}

// Watch re-applies the expiration policy to store whenever the file v was
// loaded from changes. Invalid revisions are logged and skipped; the store
// keeps its previous policy. Shard count and single-flight are fixed at
// construction and are not reloaded.
func Watch(v *viper.Viper, store *memo.Store, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		Reload(v, store, logger.With(zap.String("file", e.Name)))
	})
	v.WatchConfig()
}

// Reload applies the current content of v to store's expiration policy.
func Reload(v *viper.Viper, store *memo.Store, logger *zap.Logger) bool {
	cfg, err := FromViper(v)
	if err != nil {
		logger.Warn("ignoring invalid configuration", zap.Error(err))
		return false
	}
	store.SetPolicy(cfg.Policy)
	logger.Info("reloaded expiration policy",
		zap.Duration("absolute_ttl", cfg.Policy.AbsoluteTTL),
		zap.Duration("access_ttl", cfg.Policy.AccessTTL),
		zap.Int32("hit_count", cfg.Policy.HitCount),
	)
	return true
}
