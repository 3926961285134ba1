// Package lrucache provides a fixed-capacity key-value store with
// least-recently-used eviction. It sits in front of slow lookups such as
// directory listings so that repeated requests for the same key are served
// from memory without the store ever growing past its capacity.
package lrucache

import (
	"errors"
	"sync"
)

// DefaultCapacity is the number of entries kept when no capacity is configured.
const DefaultCapacity = 20

// ErrInvalidCapacity is returned by New when the capacity is not positive.
var ErrInvalidCapacity = errors.New("lrucache: capacity must be positive")

// EvictCallback is called with the key and value of every evicted entry.
type EvictCallback[K comparable, V any] func(key K, value V)

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithEvictCallback registers fn to be called, under the cache lock, whenever
// an entry is evicted to make room for a new key.
func WithEvictCallback[K comparable, V any](fn EvictCallback[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// Cache is a thread-safe fixed size LRU cache.
//
// Values are stored as given. The cache never copies or inspects them, so
// callers that share a stored value must treat it as immutable.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*entry[K, V]
	order    *recencyList[K, V]
	onEvict  EvictCallback[K, V]
}

// New constructs a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V], capacity),
		order:    newRecencyList[K, V](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get looks up a key's value and marks the key as most recently used.
// A miss returns the zero value and false and leaves the cache untouched.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, found := c.items[key]
	if !found {
		return value, false
	}
	c.order.moveToFront(ent)
	return ent.value, true
}

// Set stores value under key and marks the key as most recently used.
// When the cache is full and key is not present, the least recently used
// entry is evicted first. Overwriting an existing key never evicts.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		ent.value = value
		c.order.moveToFront(ent)
		return
	}

	if c.order.length() >= c.capacity {
		c.removeOldest()
	}

	c.items[key] = c.order.pushFront(key, value)
}

// Contains reports whether key is present without updating its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Keys returns the present keys ordered from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for ent := c.order.front(); ent != nil; ent = ent.nextEntry() {
		keys = append(keys, ent.key)
	}
	return keys
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.length()
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// removeOldest evicts the least recently used entry. Has to be called with lock!
func (c *Cache[K, V]) removeOldest() {
	ent := c.order.back()
	if ent == nil {
		return
	}
	c.order.remove(ent)
	delete(c.items, ent.key)
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}
