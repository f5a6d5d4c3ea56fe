package text

import "sync"

// Cache is a generic thread-safe LRU cache with a hard capacity.
// When an insertion would exceed the capacity, the least recently
// accessed entry is evicted first.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*cacheEntry[V]
	capacity int
	tick     int64 // Monotonic access counter

	// onEvict, when set, is called with the evicted key. Called under lock.
	onEvict func(K)
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// NewCache creates a new cache holding at most capacity entries.
// A capacity of 0 means unlimited.
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*cacheEntry[V]),
		capacity: capacity,
	}
}

// OnEvict registers a callback invoked for every evicted key.
// It must not call back into the cache.
func (c *Cache[K, V]) OnEvict(fn func(K)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get retrieves a value from the cache and marks it as most recently used.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick

	return entry.value, true
}

// Peek retrieves a value without touching its access time.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// AccessTime returns the tick of the last access to key.
// Ticks increase monotonically with every Get, Set and GetOrCreate.
func (c *Cache[K, V]) AccessTime(key K) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	return entry.atime, true
}

// Set stores a value in the cache.
// Replacing an existing key never evicts.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(key, value)
}

// GetOrCreate returns cached value or creates it.
// Thread-safe: create is called under lock to prevent duplicate creation.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		return entry.value
	}

	value := create()
	c.store(key, value)
	return value
}

// store inserts or replaces key. Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		entry.atime = c.tick
		return
	}

	if c.capacity > 0 && len(c.entries)+1 > c.capacity {
		c.evictOldest()
	}
	c.entries[key] = &cacheEntry[V]{
		value: value,
		atime: c.tick,
	}
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evictOldest removes the single least recently accessed entry.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	var (
		oldestKey K
		oldest    int64
		found     bool
	)
	for key, e := range c.entries {
		if !found || e.atime < oldest {
			oldestKey, oldest, found = key, e.atime, true
		}
	}
	if !found {
		return
	}
	delete(c.entries, oldestKey)
	if c.onEvict != nil {
		c.onEvict(oldestKey)
	}
}
