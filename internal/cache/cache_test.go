// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestCacheBasicOperations(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheDefaultTTL(t *testing.T) {
	if got := New(0).TTL(); got != DefaultTTL {
		t.Errorf("Expected default TTL %v, got %v", DefaultTTL, got)
	}
	if got := New(-time.Second).TTL(); got != DefaultTTL {
		t.Errorf("Expected default TTL %v for negative input, got %v", DefaultTTL, got)
	}
}

func TestCacheExpirationBoundary(t *testing.T) {
	clock := newFakeClock()
	c := New(10*time.Minute, WithClock(clock.Now))

	c.Set("key1", "value1")

	clock.Advance(10*time.Minute - time.Nanosecond)
	if _, ok := c.Get("key1"); !ok {
		t.Error("Expected key1 to be fresh just inside the TTL")
	}

	clock.Advance(time.Nanosecond)
	if _, ok := c.Get("key1"); ok {
		t.Error("Expected key1 to be stale exactly at the TTL")
	}

	stats := c.GetStats()
	if stats.Expired != 1 {
		t.Errorf("Expected 1 expired miss, got %d", stats.Expired)
	}
	if c.Len() != 1 {
		t.Errorf("Expected stale entry to remain stored until overwritten, got %d entries", c.Len())
	}
}

func TestCacheOverwriteRefreshesTimestamp(t *testing.T) {
	clock := newFakeClock()
	c := New(10*time.Minute, WithClock(clock.Now))

	c.Set("key1", "old")
	clock.Advance(11 * time.Minute)
	if _, ok := c.Get("key1"); ok {
		t.Fatal("Expected stale entry to miss")
	}

	c.Set("key1", "new")
	clock.Advance(5 * time.Minute)

	value, ok := c.Get("key1")
	if !ok || value != "new" {
		t.Errorf("Expected fresh overwritten value, got %v (ok=%v)", value, ok)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be deleted")
	}
	if stats := c.GetStats(); stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}

	c.Delete("missing")
	if stats := c.GetStats(); stats.Evictions != 1 {
		t.Errorf("Expected deleting a missing key to not count, got %d", stats.Evictions)
	}
}

func TestCacheDeletePrefix(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set(Key("venue_stats", 2, "aaaa"), 1)
	c.Set(Key("venue_stats", 3, "bbbb"), 2)
	c.Set(Key("activity_days/2024", 2, "aaaa"), 3)

	removed := c.DeletePrefix("venue_stats:")
	if removed != 2 {
		t.Errorf("Expected 2 entries removed, got %d", removed)
	}
	if _, ok := c.Get(Key("activity_days/2024", 2, "aaaa")); !ok {
		t.Error("Expected activity_days entry to survive")
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry left, got %d", c.Len())
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1 * time.Minute)

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("key%d", i), i)
	}

	c.Clear()

	for i := 0; i < 10; i++ {
		if _, exists := c.Get(fmt.Sprintf("key%d", i)); exists {
			t.Errorf("Expected key%d to be cleared", i)
		}
	}

	stats := c.GetStats()
	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 total keys, got %d", stats.TotalKeys)
	}
	if stats.Evictions != 10 {
		t.Errorf("Expected 10 evictions, got %d", stats.Evictions)
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("key1")
	c.Get("key2")

	stats := c.GetStats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}
	if stats.TotalKeys != 1 {
		t.Errorf("Expected 1 total key, got %d", stats.TotalKeys)
	}
}

func TestCacheHitRate(t *testing.T) {
	c := New(1 * time.Minute)

	if rate := c.HitRate(); rate != 0.0 {
		t.Errorf("Expected 0%% hit rate with no requests, got %.2f%%", rate)
	}

	c.Set("key1", "value1")
	c.Get("key1")
	c.Get("key1")
	c.Get("key1")
	c.Get("key2")

	if rate := c.HitRate(); rate != 75.0 {
		t.Errorf("Expected 75%% hit rate, got %.2f%%", rate)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(1 * time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i%5)
			c.Set(key, i)
			c.Get(key)
			if i%10 == 0 {
				c.DeletePrefix("key1")
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 5 {
		t.Errorf("Expected at most 5 keys, got %d", c.Len())
	}
}
