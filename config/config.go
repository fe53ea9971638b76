// Package config loads store settings with viper and keeps a live store's
// expiration policy in sync with its configuration file.
//
// Durations are written with units ("250ms", "5m"). Every key can be
// overridden from the environment by upper-casing it and replacing dots with
// underscores, e.g. MICROCACHE_EXPIRATION_ABSOLUTE_TTL=1m.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/on-the-ground/microcache/configkeys"
	"github.com/on-the-ground/microcache/memo"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid microcache configuration")

// Config is the file form of a store's settings.
type Config struct {
	Policy          memo.Policy
	Name            string
	Shards          int
	SingleFlight    bool
	JanitorInterval time.Duration
}

// NewViper returns a viper instance with defaults and environment overrides
// for every microcache key.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(configkeys.ConfigExpirationAbsoluteTTL, time.Duration(0))
	v.SetDefault(configkeys.ConfigExpirationAccessTTL, time.Duration(0))
	v.SetDefault(configkeys.ConfigExpirationHitCount, 0)
	v.SetDefault(configkeys.ConfigStoreName, "")
	v.SetDefault(configkeys.ConfigStoreShards, 1)
	v.SetDefault(configkeys.ConfigStoreSingleFlight, false)
	v.SetDefault(configkeys.ConfigJanitorInterval, time.Duration(0))

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file at path. The returned viper instance can
// be passed to Watch.
func Load(path string) (*viper.Viper, Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))

	if err := v.ReadInConfig(); err != nil {
		return nil, Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := FromViper(v)
	if err != nil {
		return nil, Config{}, err
	}
	return v, cfg, nil
}

// FromViper extracts and validates a Config.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Policy: memo.Policy{
			AbsoluteTTL: v.GetDuration(configkeys.ConfigExpirationAbsoluteTTL),
			AccessTTL:   v.GetDuration(configkeys.ConfigExpirationAccessTTL),
			HitCount:    v.GetInt32(configkeys.ConfigExpirationHitCount),
		},
		Name:            v.GetString(configkeys.ConfigStoreName),
		Shards:          v.GetInt(configkeys.ConfigStoreShards),
		SingleFlight:    v.GetBool(configkeys.ConfigStoreSingleFlight),
		JanitorInterval: v.GetDuration(configkeys.ConfigJanitorInterval),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Policy.AbsoluteTTL < 0:
		return fmt.Errorf("%w: %s is negative", ErrInvalidConfig, configkeys.ConfigExpirationAbsoluteTTL)
	case c.Policy.AccessTTL < 0:
		return fmt.Errorf("%w: %s is negative", ErrInvalidConfig, configkeys.ConfigExpirationAccessTTL)
	case c.Policy.HitCount < 0:
		return fmt.Errorf("%w: %s is negative", ErrInvalidConfig, configkeys.ConfigExpirationHitCount)
	case c.Shards < 0:
		return fmt.Errorf("%w: %s is negative", ErrInvalidConfig, configkeys.ConfigStoreShards)
	case c.JanitorInterval < 0:
		return fmt.Errorf("%w: %s is negative", ErrInvalidConfig, configkeys.ConfigJanitorInterval)
	}
	return nil
}

// Options converts c into store options.
func (c Config) Options() []memo.Option {
	opts := []memo.Option{
		memo.WithPolicy(c.Policy),
		memo.WithShards(c.Shards),
	}
	if c.Name != "" {
		opts = append(opts, memo.WithName(c.Name))
	}
	if c.SingleFlight {
		opts = append(opts, memo.WithSingleFlight())
	}
	return opts
}

// NewStore builds a store from c. extra options are applied last.
func (c Config) NewStore(extra ...memo.Option) *memo.Store {
	return memo.New(append(c.Options(), extra...)...)
}
