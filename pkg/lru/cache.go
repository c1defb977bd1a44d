package lru

import "github.com/lightningnetwork/lnd/fn/v2"

// Cache is a fixed-capacity key-value store with least recently used
// eviction.
//
// The index and the recency list always hold the same set of keys, and
// their size never exceeds the capacity. The zero value is not usable;
// create instances with New.
type Cache[K comparable, V any] struct {
	capacity  int
	index     map[K]handle
	order     *orderList[K, V]
	onEvict   func(key K, value V)
	evictions uint64
}

// New creates an empty cache holding at most capacity entries.
// A capacity below 1 is rejected with an error matching ErrInvalidCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict is like New, and additionally calls onEvict with every
// entry removed to make room for a new key. onEvict runs after the entry
// has left the cache and must not call back into it.
func NewWithEvict[K comparable, V any](capacity int, onEvict func(key K, value V)) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, InvalidCapacityError(capacity)
	}
	indexSize := capacity
	if indexSize > maxPrealloc {
		indexSize = maxPrealloc
	}
	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]handle, indexSize),
		order:    newOrderList[K, V](capacity),
		onEvict:  onEvict,
	}, nil
}

// Get returns the value stored for key and marks it as the most recently
// used entry. On a miss it returns the zero value and false, and the cache
// is left untouched.
// Time complexity: O(1)
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	h, ok := c.index[key]
	if !ok {
		return
	}
	c.order.moveToFront(h)
	return c.order.nodes[h].value, true
}

// Lookup is Get returning an fn.Option: Some on a hit, None on a miss.
func (c *Cache[K, V]) Lookup(key K) fn.Option[V] {
	if value, ok := c.Get(key); ok {
		return fn.Some(value)
	}
	return fn.None[V]()
}

// Put stores value under key and marks it as the most recently used entry.
// An existing key is updated in place. A new key that does not fit evicts
// the least recently used entry.
// Time complexity: O(1)
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.index[key]; ok {
		c.order.nodes[h].value = value
		c.order.moveToFront(h)
		return
	}

	h := c.order.alloc(key, value)
	c.order.insertAtFront(h)
	c.index[key] = h

	if len(c.index) > c.capacity {
		c.evict()
	}
}

// evict removes the entry adjacent to the tail sentinel.
func (c *Cache[K, V]) evict() {
	h := c.order.back()
	if h == noHandle {
		return
	}
	evicted := c.order.nodes[h]
	c.order.detach(h)
	delete(c.index, evicted.key)
	c.order.release(h)
	c.evictions++
	if c.onEvict != nil {
		c.onEvict(evicted.key, evicted.value)
	}
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the capacity the cache was created with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Evictions returns how many entries have been evicted so far.
func (c *Cache[K, V]) Evictions() uint64 {
	return c.evictions
}

// Keys returns the keys ordered from most to least recently used.
// It does not change the recency order.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.order.size)
	c.order.walk(func(h handle) bool {
		keys = append(keys, c.order.nodes[h].key)
		return true
	})
	return keys
}
