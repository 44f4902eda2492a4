package locres

import (
	"container/list"
	"log/slog"
	"sync"
	"time"
)

// cacheEntry wraps a stored value with its bookkeeping metadata.
// lastAccessed is always >= cachedAt; both are refreshed by Set, and
// lastAccessed alone by a Get hit.
type cacheEntry[K comparable, V any] struct {
	key          K
	value        V
	cachedAt     time.Time
	accessCount  int64
	lastAccessed time.Time
	elem         *list.Element
}

// CacheStats is a point-in-time snapshot of a cache's counters.
type CacheStats struct {
	Size      int
	Hits      int64
	Misses    int64
	Evictions int64
}

// Cache is a bounded key/value store with per-entry TTL and LRU eviction.
//
// An entry older than the TTL is treated as absent by Get even before the
// background sweeper has physically removed it, so the sweeper is purely a
// memory bound, not a correctness requirement. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[K, V]
	// order front = most recently used. Because every hit and every write
	// moves the entry to the front, the back element always holds the
	// smallest lastAccessed, which is the eviction victim.
	order   *list.List
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	log     *slog.Logger

	hits      int64
	misses    int64
	evictions int64
}

// defaultCacheSize is used when NewCache is given a non-positive maxSize.
const defaultCacheSize = 256

// NewCache creates a bounded cache holding at most maxSize entries, each
// expiring ttl after it was written. A ttl <= 0 means entries never expire.
func NewCache[K comparable, V any](maxSize int, ttl time.Duration) *Cache[K, V] {
	if maxSize <= 0 {
		maxSize = defaultCacheSize
	}
	return &Cache[K, V]{
		entries: make(map[K]*cacheEntry[K, V]),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
		log:     slog.Default(),
	}
}

// withClock replaces the cache's time source. Test hook.
func (c *Cache[K, V]) withClock(now func() time.Time) *Cache[K, V] {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
	return c
}

func (c *Cache[K, V]) expired(e *cacheEntry[K, V], now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.cachedAt) > c.ttl
}

// Get returns the value for key, or (zero, false) when the key is missing or
// its entry has outlived the TTL. A hit counts as an access: it bumps the
// entry's access count and refreshes its LRU position.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}
	now := c.now()
	if c.expired(e, now) {
		// Lazy expiry: drop it now rather than waiting for the sweeper.
		c.removeLocked(e)
		c.misses++
		return zero, false
	}
	e.accessCount++
	e.lastAccessed = now
	c.order.MoveToFront(e.elem)
	c.hits++
	return e.value, true
}

// Set inserts or overwrites the value for key. When the cache is full and the
// key is new, the least recently accessed entry is evicted first.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.entries[key]; ok {
		e.value = value
		e.cachedAt = now
		e.lastAccessed = now
		c.order.MoveToFront(e.elem)
		return
	}
	if len(c.entries) >= c.maxSize {
		if back := c.order.Back(); back != nil {
			victim := back.Value.(*cacheEntry[K, V])
			c.removeLocked(victim)
			c.evictions++
		}
	}
	e := &cacheEntry[K, V]{
		key:          key,
		value:        value,
		cachedAt:     now,
		lastAccessed: now,
	}
	e.elem = c.order.PushFront(e)
	c.entries[key] = e
}

// Delete removes the entry for key, if any.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.removeLocked(e)
	}
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*cacheEntry[K, V])
	c.order.Init()
}

// Len reports the number of physically present entries, expired or not.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache's counters.
func (c *Cache[K, V]) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Size:      len(c.entries),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

func (c *Cache[K, V]) removeLocked(e *cacheEntry[K, V]) {
	c.order.Remove(e.elem)
	delete(c.entries, e.key)
}

// sweep physically removes all expired entries and reports how many it dropped.
func (c *Cache[K, V]) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for _, e := range c.entries {
		if c.expired(e, now) {
			c.removeLocked(e)
			removed++
		}
	}
	return removed
}

// StartSweeper launches a goroutine that sweeps expired entries every
// interval. The returned stop function terminates the goroutine; calling it
// more than once is safe.
func (c *Cache[K, V]) StartSweeper(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := c.sweep(); n > 0 {
					c.log.Debug("cache sweep", "removed", n, "remaining", c.Len())
				}
			case <-done:
				return
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}
