package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes a cache backend.
type Config struct {
	Backend   string       `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	KeyPrefix string       `env:"CACHE_KEY_PREFIX" env-default:"streaks"`
	Redis     RedisOptions `env-prefix:"CACHE_"`
}

// New builds the configured backend. Every key is namespaced under
// cfg.KeyPrefix and name so caches of different value types never share keys.
func New[V any](cfg Config, name string, clock clockwork.Clock) (Cache[V], error) {
	prefix := name
	if cfg.KeyPrefix != "" {
		prefix = cfg.KeyPrefix + ":" + name
	}
	switch cfg.Backend {
	case RedisBackend:
		opts := cfg.Redis
		return NewRedisCache[V](&opts, prefix), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](clock), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Fetch returns the cached value for key, calling load and storing its
// result on a miss. Read failures other than a miss are returned as is; a
// failed store is ignored since the loaded value is still correct.
func Fetch[V any](ctx context.Context, c Cache[V], key string, ttl time.Duration, load func(context.Context) (V, error)) (V, error) {
	v, err := c.Get(ctx, key)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		var zero V
		return zero, err
	}

	v, err = load(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	_ = c.Set(ctx, key, v, ttl)
	return v, nil
}
