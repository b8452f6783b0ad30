package resolver

import (
	"sync"
	"time"

	"sayyara-vehicle-api/internal/model"
)

type cacheEntry struct {
	value      model.YearRange
	insertedAt time.Time
}

// Cache is the concurrency-safe year-range cache. Entries never expire;
// they are dropped only by an explicit Clear. InsertedAt is recorded so a
// TTL policy can be added later without changing the entry shape.
//
// Concurrent cache-miss callers for the same key may each resolve and write
// redundantly; last write wins, which is harmless since every tier is an
// idempotent function of (brand, model).
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached range for a brand/model pair.
func (c *Cache) Get(brand, mdl string) (model.YearRange, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[cacheKey(brand, mdl)]
	return entry.value, ok
}

// Put stores a resolved range for a brand/model pair.
func (c *Cache) Put(brand, mdl string, r model.YearRange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(brand, mdl)] = cacheEntry{
		value:      r,
		insertedAt: time.Now(),
	}
}

// Clear drops every entry and returns how many were removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]cacheEntry)
	return n
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func cacheKey(brand, model string) string {
	return brand + "|" + model
}
