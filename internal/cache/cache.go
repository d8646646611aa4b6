// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is the freshness window for memoized analytics results.
const DefaultTTL = 10 * time.Minute

// Entry represents a cached item with its creation time.
type Entry struct {
	Data      interface{}
	CreatedAt time.Time
}

// Cache provides a thread-safe in-memory memoization cache with TTL support.
//
// Freshness is judged on read: an entry is a hit only while
// now - CreatedAt < ttl. Stale entries stay in the map until the next Set for
// the same key overwrites them; there is no background sweeper, so entries for
// keys that are never requested again live until the process exits.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	now     func() time.Time
	stats   Stats
}

// Stats tracks cache performance metrics
type Stats struct {
	mu        sync.RWMutex
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Expired   int64 `json:"expired"`
	Evictions int64 `json:"evictions"`
	TotalKeys int64 `json:"total_keys"`
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source used for entry timestamps and
// freshness checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a new thread-safe memoization cache.
//
// A non-positive ttl falls back to DefaultTTL.
//
// Example:
//
//	c := cache.New(10 * time.Minute)
//	key := cache.Key("venue_stats", len(runs), cache.Fingerprint(runs))
//	if data, ok := c.Get(key); ok {
//	    return data.([]models.VenueStats)
//	}
func New(ttl time.Duration, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured freshness window.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get retrieves a fresh value from the cache by key.
//
// Returns (nil, false) if the key is absent or the entry is older than the
// TTL. Expired entries are left in place for the next Set to overwrite.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss(false)
		return nil, false
	}

	if c.now().Sub(entry.CreatedAt) >= c.ttl {
		c.recordMiss(true)
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// Set stores a value with a fresh creation timestamp, overwriting any
// existing entry for key.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	c.entries[key] = Entry{
		Data:      value,
		CreatedAt: c.now(),
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.TotalKeys = total
	c.stats.mu.Unlock()
}

// Delete removes a specific cache entry by key. No-op if the key is absent.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	if existed {
		c.stats.Evictions++
	}
	c.stats.TotalKeys = total
	c.stats.mu.Unlock()
}

// DeletePrefix removes every entry whose key starts with prefix and returns
// how many were removed. Keys built with Key start with the operation name,
// so DeletePrefix(operation+":") invalidates one operation.
func (c *Cache) DeletePrefix(prefix string) int {
	c.mu.Lock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	total := int64(len(c.entries))
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += int64(removed)
	c.stats.TotalKeys = total
	c.stats.mu.Unlock()

	return removed
}

// Clear removes all entries from the cache in a single atomic operation.
//
// Callers use this after mutating data that cached results depend on
// (for example the coordinate registry behind geographic classification).
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// Len returns the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a snapshot of current cache performance statistics.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:      c.stats.Hits,
		Misses:    c.stats.Misses,
		Expired:   c.stats.Expired,
		Evictions: c.stats.Evictions,
		TotalKeys: c.stats.TotalKeys,
	}
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

func (c *Cache) recordMiss(expired bool) {
	c.stats.mu.Lock()
	c.stats.Misses++
	if expired {
		c.stats.Expired++
	}
	c.stats.mu.Unlock()
}
