// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package cache provides the thread-safe memoization cache used by the
analytics engine.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live freshness judged on read (now - createdAt < ttl)
  - Content-fingerprint keys (SHA-256 over the go-json encoding)
  - Prefix invalidation per logical operation and a full Clear
  - Hit/miss/expiry statistics

# Keys

A key combines the operation name, the record count and a fingerprint of
the record collection:

	key := cache.Key("venue_stats", len(runs), cache.Fingerprint(runs))

Operations that take extra parameters fold them into the operation name,
e.g. "activity_days/2024".

# Expiry

There is no background cleanup. A stale entry is reported as a miss and is
overwritten by the recomputed value. Entries for keys that are never read
again persist until process teardown; with a handful of distinct datasets per
process this is bounded in practice.

# Usage Example

	c := cache.New(10 * time.Minute)

	if cached, ok := c.Get(key); ok {
	    return cached.([]models.VenueStats)
	}
	stats := analytics.VenueStats(runs, registry)
	c.Set(key, stats)

	// Invalidate one operation after the registry changes
	c.DeletePrefix("venue_stats:")
*/
package cache
