// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import (
	"strings"
	"sync"

	"github.com/tomtom215/parkstats/internal/models"
)

const venueSuffix = "parkrun"

// Registry maps venue names to coordinates.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	entries    []VenueEntry
	normalized []string
	exact      map[string]int
	grid       *spatialGrid
}

// NewRegistry builds a registry from entries. Later duplicates of a name
// replace the coordinate of the first occurrence but keep its position.
func NewRegistry(entries []VenueEntry) *Registry {
	r := &Registry{
		exact: make(map[string]int, len(entries)),
		grid:  newSpatialGrid(defaultCellSizeKm),
	}
	for _, e := range entries {
		r.register(e.Name, e.Coordinate)
	}
	return r
}

// DefaultRegistry returns a registry loaded with KnownVenues.
func DefaultRegistry() *Registry {
	return NewRegistry(KnownVenues)
}

// NormalizeVenueName lower-cases name, strips a trailing "parkrun" and trims
// surrounding whitespace.
func NormalizeVenueName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, venueSuffix)
	return strings.TrimSpace(n)
}

// Coordinate looks up a venue. An exact name match is tried first, then the
// first table entry whose normalized name contains, or is contained in, the
// normalized query. An empty normalized query never matches.
func (r *Registry) Coordinate(name string) (models.Coordinate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.exact[name]; ok {
		return r.entries[i].Coordinate, true
	}

	q := NormalizeVenueName(name)
	if q == "" {
		return models.Coordinate{}, false
	}
	for i, key := range r.normalized {
		if key == "" {
			continue
		}
		if strings.Contains(key, q) || strings.Contains(q, key) {
			return r.entries[i].Coordinate, true
		}
	}
	return models.Coordinate{}, false
}

// Register adds a venue or moves an existing one.
func (r *Registry) Register(name string, c models.Coordinate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(name, c)
}

func (r *Registry) register(name string, c models.Coordinate) {
	if i, ok := r.exact[name]; ok {
		r.entries[i].Coordinate = c
	} else {
		r.exact[name] = len(r.entries)
		r.entries = append(r.entries, VenueEntry{Name: name, Coordinate: c})
		r.normalized = append(r.normalized, NormalizeVenueName(name))
	}
	r.grid.insert(name, c)
}

// Len returns the number of venues in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns the venue names in table order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the table.
func (r *Registry) Entries() []VenueEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]VenueEntry(nil), r.entries...)
}

// MapRegion returns a padded region enclosing every venue in names that has
// a known coordinate. It returns false when none of them is known.
func (r *Registry) MapRegion(names []string) (models.MapRegion, bool) {
	coords := make([]models.Coordinate, 0, len(names))
	for _, name := range names {
		if c, ok := r.Coordinate(name); ok {
			coords = append(coords, c)
		}
	}
	return BoundingRegion(coords)
}

// Nearby returns the known venues within radiusKm of c, nearest first.
func (r *Registry) Nearby(c models.Coordinate, radiusKm float64) []models.NearbyVenue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.grid.queryNearby(c, radiusKm)
}
