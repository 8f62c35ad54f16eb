package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/courier-portal/internal/metrics"
)

// cachedTime provides a cached time value updated periodically.
// This reduces the overhead of frequent time.Now() calls.
var (
	cachedTime     atomic.Value
	cachedTimeOnce sync.Once
)

func init() {
	initCachedTime()
}

// initCachedTime starts the background time updater.
func initCachedTime() {
	cachedTimeOnce.Do(func() {
		cachedTime.Store(time.Now())
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for t := range ticker.C {
				cachedTime.Store(t)
			}
		}()
	})
}

// now returns the cached current time (updated every 100ms).
// Use this for non-critical time checks like cache expiration.
func now() time.Time {
	if t := cachedTime.Load(); t != nil {
		if cachedT, ok := t.(time.Time); ok {
			return cachedT
		}
	}
	return time.Now()
}

// TTL provides thread-safe LRU caching with TTL expiration.
// It implements the CacheWithMetrics interface. The name labels its metrics.
type TTL[K comparable, V any] struct {
	name      string
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	items     map[K]*entry[K, V]
	head      *entry[K, V]
	tail      *entry[K, V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	gauges    bool
	hits      int64
	misses    int64
	evictions int64
}

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *entry[K, V]
	next      *entry[K, V]
}

// NewTTL creates a TTL-based LRU cache with the specified capacity and TTL.
// A background goroutine periodically cleans up expired entries.
func NewTTL[K comparable, V any](name string, capacity int, ttl time.Duration) *TTL[K, V] {
	return newTTL[K, V](name, capacity, ttl, true)
}

// newTTL builds a cache; shards of a Sharded cache skip the size gauges since
// they share one metric label.
func newTTL[K comparable, V any](name string, capacity int, ttl time.Duration, gauges bool) *TTL[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &TTL[K, V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*entry[K, V], capacity),
		stopCh:   make(chan struct{}),
		gauges:   gauges,
	}
	c.updateGauges(0)
	go c.startCleanup()
	return c
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *TTL[K, V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *TTL[K, V]) Metrics() Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get retrieves a value from the cache if it exists and hasn't expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.RLock()
	e, ok := c.items[key]
	var expiresAt time.Time
	if ok {
		expiresAt = e.expiresAt
	}
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}

	// time.Now rather than the cached clock: a 100ms stale read would serve expired entries.
	if time.Now().After(expiresAt) {
		c.mu.Lock()
		if cur, stillExists := c.items[key]; stillExists && cur == e {
			c.removeEntry(e)
		}
		size := len(c.items)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		c.updateGauges(size)
		return zero, false
	}

	c.mu.Lock()
	value := e.value
	if _, stillExists := c.items[key]; stillExists {
		c.moveToFront(e)
	}
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return value, true
}

// Set adds or updates a value in the cache with the configured TTL.
// If the cache is at capacity, the least recently used entry is evicted.
func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = now().Add(c.ttl)
		c.moveToFront(e)
		return
	}

	e := &entry[K, V]{
		key:       key,
		value:     value,
		expiresAt: now().Add(c.ttl),
	}
	c.items[key] = e
	c.addToFront(e)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
	metrics.RecordCacheOperation(c.name, "set", "success")
	c.updateGauges(len(c.items))
}

// startCleanup runs an adaptive background cleanup routine.
func (c *TTL[K, V]) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Only sweep when the cache is more than 80% full.
			c.mu.RLock()
			shouldCleanup := len(c.items) > (c.capacity * 80 / 100)
			c.mu.RUnlock()

			if shouldCleanup {
				c.cleanup()
			}
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries from the cache.
func (c *TTL[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	currentTime := now()
	for _, e := range c.items {
		if currentTime.After(e.expiresAt) {
			c.removeEntry(e)
		}
	}
	c.updateGauges(len(c.items))
}

func (c *TTL[K, V]) updateGauges(size int) {
	if c.gauges {
		metrics.UpdateCacheMetrics(c.name, size, c.capacity)
	}
}

func (c *TTL[K, V]) removeEntry(e *entry[K, V]) {
	delete(c.items, e.key)
	c.remove(e)
}

func (c *TTL[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *TTL[K, V]) addToFront(e *entry[K, V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

// remove unlinks an entry without touching the map.
func (c *TTL[K, V]) remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

// removeTail removes the least recently used entry from the cache.
func (c *TTL[K, V]) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}

// Invalidate removes a specific key from the cache.
func (c *TTL[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
		c.updateGauges(len(c.items))
	}
}

// Clear removes all entries from the cache and resets its counters.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*entry[K, V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation(c.name, "clear", "success")
	c.updateGauges(0)
}
