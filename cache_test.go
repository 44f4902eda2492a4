package locres

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache[string, int](10, time.Hour)

	_, ok := c.Get("missing")
	assert.False(t, ok, "miss should be a normal return, not an error")

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.Set("x", 1)
	c.Set("y", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheLazyTTLExpiry(t *testing.T) {
	clock := newFakeClock()
	c := NewCache[string, string](10, time.Minute).withClock(clock.Now)

	c.Set("k", "v")
	clock.Advance(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry within TTL should be present")

	clock.Advance(2 * time.Second)
	// No sweep has run; the read itself must treat the entry as absent.
	_, ok = c.Get("k")
	assert.False(t, ok, "expired entry must be absent even before a sweep")
	assert.Equal(t, 0, c.Len(), "lazy expiry drops the entry on read")
}

func TestCacheLRUEvictionFollowsAccess(t *testing.T) {
	clock := newFakeClock()
	c := NewCache[string, int](3, time.Hour).withClock(clock.Now)

	c.Set("old", 1)
	clock.Advance(time.Second)
	c.Set("middle", 2)
	clock.Advance(time.Second)
	c.Set("new", 3)
	clock.Advance(time.Second)

	// Refresh the oldest-by-insertion entry, making "middle" the LRU.
	_, ok := c.Get("old")
	require.True(t, ok)
	clock.Advance(time.Second)

	c.Set("extra", 4)

	_, ok = c.Get("old")
	assert.True(t, ok, "refreshed entry must survive eviction")
	_, ok = c.Get("middle")
	assert.False(t, ok, "least recently accessed entry is the victim")
	_, ok = c.Get("new")
	assert.True(t, ok)
	_, ok = c.Get("extra")
	assert.True(t, ok)
}

func TestCacheSweepRemovesExpired(t *testing.T) {
	clock := newFakeClock()
	c := NewCache[string, int](10, time.Minute).withClock(clock.Now)

	c.Set("a", 1)
	c.Set("b", 2)
	clock.Advance(30 * time.Second)
	c.Set("c", 3)
	clock.Advance(45 * time.Second)

	removed := c.sweep()
	assert.Equal(t, 2, removed, "a and b outlived the TTL")
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("c")
	assert.True(t, ok)
}

func TestCacheBackgroundSweeper(t *testing.T) {
	c := NewCache[string, int](10, 5*time.Millisecond)
	c.Set("a", 1)

	stop := c.StartSweeper(10 * time.Millisecond)
	defer stop()

	assert.Eventually(t, func() bool { return c.Len() == 0 },
		500*time.Millisecond, 10*time.Millisecond,
		"sweeper should physically remove the expired entry")

	// Stopping twice must be safe.
	stop()
	stop()
}

func TestCacheDefaultsNonPositiveSize(t *testing.T) {
	c := NewCache[string, int](0, time.Hour)
	for i := 0; i < defaultCacheSize+10; i++ {
		c.Set(string(rune('a'+i%26))+string(rune('0'+i%10)), i)
	}
	assert.LessOrEqual(t, c.Len(), defaultCacheSize)
}

func TestCacheStats(t *testing.T) {
	c := NewCache[string, int](2, time.Hour)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Get("nope")
	c.Set("c", 3) // evicts b

	s := c.Stats()
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, int64(1), s.Evictions)
	assert.Equal(t, 2, s.Size)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache[int, int](64, time.Hour)
	stop := c.StartSweeper(time.Millisecond)
	defer stop()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.Set(i%40, w)
				c.Get(i % 40)
				if i%50 == 0 {
					c.Delete(i % 40)
				}
			}
		}(w)
	}
	wg.Wait()
}
