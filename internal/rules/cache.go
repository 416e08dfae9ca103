package rules

import (
	"sync"
	"time"

	"github.com/herizorandria/go-link-gate/internal/models"
)

// maxCacheEntries bounds the memo cache; when crossed, expired entries are
// purged and, failing that, the cache is reset.
const maxCacheEntries = 4096

type cacheEntry struct {
	signal  models.BotSignal
	expires time.Time
}

// Cache memoizes classification results per raw user-agent string for a
// bounded time window. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

// NewCache creates a cache with the given TTL. A non-positive TTL yields a
// cache that never stores anything.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the memoized signal for the user agent, if still fresh.
func (c *Cache) Get(userAgent string) (models.BotSignal, bool) {
	c.mu.RLock()
	entry, ok := c.entries[userAgent]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		return models.BotSignal{}, false
	}
	return entry.signal, true
}

// Set memoizes a signal for the user agent.
func (c *Cache) Set(userAgent string, signal models.BotSignal) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= maxCacheEntries {
		now := time.Now()
		for key, entry := range c.entries {
			if now.After(entry.expires) {
				delete(c.entries, key)
			}
		}
		if len(c.entries) >= maxCacheEntries {
			c.entries = make(map[string]cacheEntry)
		}
	}

	c.entries[userAgent] = cacheEntry{
		signal:  signal,
		expires: time.Now().Add(c.ttl),
	}
}

// Len reports the current number of memoized agents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
