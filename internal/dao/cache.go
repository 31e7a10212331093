package dao

import (
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for cached records.
const DefaultCacheTTL = 5 * time.Second

type cacheEntry struct {
	records   []Record
	timestamp time.Time
}

// ResourceCache provides TTL-based caching of listed records.
type ResourceCache struct {
	data map[string]cacheEntry
	ttl  time.Duration
	now  func() time.Time
	mx   sync.RWMutex
}

// NewResourceCache creates a new ResourceCache with the specified TTL.
func NewResourceCache(ttl time.Duration) *ResourceCache {
	return &ResourceCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get retrieves the records cached for key, unless missing or expired.
func (c *ResourceCache) Get(key string) ([]Record, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	entry, ok := c.data[key]
	if !ok || c.now().Sub(entry.timestamp) > c.ttl {
		return nil, false
	}

	return entry.records, true
}

// Set stores records in the cache with the given key.
func (c *ResourceCache) Set(key string, records []Record) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data[key] = cacheEntry{
		records:   records,
		timestamp: c.now(),
	}
}

// Invalidate removes a specific key from the cache.
func (c *ResourceCache) Invalidate(key string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	delete(c.data, key)
}

// InvalidatePrefix removes all entries whose keys start with prefix.
func (c *ResourceCache) InvalidatePrefix(prefix string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}

// Clear removes all entries from the cache.
func (c *ResourceCache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data = make(map[string]cacheEntry)
}
