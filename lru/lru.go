// Package lru provides a bounded key/value cache that evicts the least recently
// used entry when it grows past its capacity.
//
// Unlike the persistent containers, a Cache is mutable. Every operation is
// serialized by the cache's own mutex, so one Cache may be shared between
// goroutines.
package lru

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/on-the-ground/collect_ive_go/errs"
	"github.com/on-the-ground/collect_ive_go/option"
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	name   string
}

// Option customizes a Cache at construction.
type Option func(*options)

// WithLogger sets the logger receiving debug entries about construction,
// eviction and purge. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithName labels the cache in log entries.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Cache is a bounded map ordered by recency of use.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	id       uuid.UUID
	capacity int
	lru      *simplelru.LRU[K, V]

	// putting is set while Put runs, so that only capacity evictions reach
	// onEvict. simplelru also reports Remove and Purge through its callback.
	putting bool
	onEvict func(K, V)
	logger  *zap.Logger
}

// New creates an empty cache holding at most capacity entries.
// A capacity below 1 fails with errs.ErrInvalidCapacity.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidCapacity, capacity)
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	logger := o.logger.With(zap.Stringer("cache_id", id))
	if o.name != "" {
		logger = logger.With(zap.String("cache", o.name))
	}

	c := &Cache[K, V]{
		id:       id,
		capacity: capacity,
		logger:   logger,
	}
	l, err := simplelru.NewLRU[K, V](capacity, c.evicted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCapacity, err)
	}
	c.lru = l

	logger.Debug("lru cache created", zap.Int("capacity", capacity))
	return c, nil
}

// MustNew is New for capacities known to be valid. It panics otherwise.
func MustNew[K comparable, V any](capacity int, opts ...Option) *Cache[K, V] {
	return errs.Must(New[K, V](capacity, opts...))
}

// ID identifies the cache in log entries.
func (c *Cache[K, V]) ID() uuid.UUID {
	return c.id
}

func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// OnEvict registers f to be called with every entry dropped for capacity.
// f runs while the cache is locked and must not call back into it.
func (c *Cache[K, V]) OnEvict(f func(K, V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = f
}

// Put binds k to v and marks k as most recently used. When the cache is full and
// k is new, the least recently used entry is evicted before Put returns.
func (c *Cache[K, V]) Put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.putting = true
	c.lru.Add(k, v)
	c.putting = false
}

// evicted is the simplelru callback. It runs with c.mu held.
func (c *Cache[K, V]) evicted(k K, v V) {
	if !c.putting {
		return
	}
	c.logger.Debug("lru entry evicted", zap.Any("key", k), zap.Int("len", c.lru.Len()))
	if c.onEvict != nil {
		c.onEvict(k, v)
	}
}

// Get returns the value bound to k and marks k as most recently used.
func (c *Cache[K, V]) Get(k K) option.Option[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lru.Get(k); ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Peek is Get without changing recency.
func (c *Cache[K, V]) Peek(k K) option.Option[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.lru.Peek(k); ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Contains reports whether k is cached, without changing recency.
func (c *Cache[K, V]) Contains(k K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(k)
}

// Remove drops k and reports whether it was present. OnEvict is not called.
func (c *Cache[K, V]) Remove(k K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Remove(k)
}

// Keys lists the cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

// Purge drops every entry. OnEvict is not called.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.lru.Len()
	c.lru.Purge()
	c.logger.Debug("lru cache purged", zap.Int("dropped", n))
}
