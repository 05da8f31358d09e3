package cache

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type item[V any] struct {
	value     V
	expiresAt time.Time // zero = no expiry
}

func (i item[V]) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

type shard[V any] struct {
	sync.Mutex
	items map[string]item[V]
}

// MemoryCache is a sharded in-process cache with a janitor that drops
// expired keys.
type MemoryCache[V any] struct {
	shards []*shard[V]
	clock  clockwork.Clock
	quit   chan struct{}
	once   sync.Once
}

// NewMemoryCache creates a 64-shard cache with a 1s janitor.
func NewMemoryCache[V any](clock clockwork.Clock) *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](clock, 64, time.Second)
}

// NewMemoryCacheWithOptions allows customizing shard count & janitor interval.
func NewMemoryCacheWithOptions[V any](clock clockwork.Clock, shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if shardCount < 1 {
		shardCount = 1
	}
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		clock:  clock,
		quit:   make(chan struct{}),
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{items: make(map[string]item[V])}
	}
	go mc.janitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

func (mc *MemoryCache[V]) shardFor(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return mc.shards[h.Sum32()%uint32(len(mc.shards))]
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	s := mc.shardFor(key)

	s.Lock()
	defer s.Unlock()
	itm, ok := s.items[key]
	if !ok {
		return zero, ErrCacheMiss
	}
	if itm.expired(mc.clock.Now()) {
		delete(s.items, key)
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	itm := item[V]{value: value}
	if ttl > 0 {
		itm.expiresAt = mc.clock.Now().Add(ttl)
	}
	s := mc.shardFor(key)
	s.Lock()
	s.items[key] = itm
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.shardFor(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

// Len reports the number of stored keys, expired or not.
func (mc *MemoryCache[V]) Len() int {
	n := 0
	for _, s := range mc.shards {
		s.Lock()
		n += len(s.items)
		s.Unlock()
	}
	return n
}

func (mc *MemoryCache[V]) sweep() {
	now := mc.clock.Now()
	for _, s := range mc.shards {
		s.Lock()
		for k, itm := range s.items {
			if itm.expired(now) {
				delete(s.items, k)
			}
		}
		s.Unlock()
	}
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	ticker := mc.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			mc.sweep()
		case <-mc.quit:
			return
		}
	}
}
