// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package cache

import (
	"crypto/sha256"
	"fmt"

	"github.com/goccy/go-json"
)

// Fingerprint returns a stable content hash of v.
//
// v is serialized with go-json and hashed with SHA-256; the first 16 bytes
// are returned as hex. Struct fields encode in declaration order so equal
// collections always produce equal fingerprints. If v cannot be encoded the
// fingerprint falls back to its %v rendering.
func Fingerprint(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		data = []byte(fmt.Sprintf("%#v", v))
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:16])
}

// Key builds a composite cache key from the logical operation name, the
// record count and a content fingerprint. The count is a cheap secondary
// guard against fingerprint collisions between collections of different size.
//
//	cache.Key("venue_stats", len(runs), cache.Fingerprint(runs))
//	// venue_stats:42:9f86d081884c7d659a2feaa0c55ad015
func Key(operation string, count int, fingerprint string) string {
	return fmt.Sprintf("%s:%d:%s", operation, count, fingerprint)
}
