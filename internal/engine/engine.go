// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

// Package engine is the caller-facing surface of the analytics core. An
// Engine owns the memoization cache, the coordinate registry and the region
// classifier, and exposes every statistic as a synchronous call.
//
// Venue statistics and activity calendars are memoized by operation, record
// count and content fingerprint. Everything else is cheap enough to compute
// on each call.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/parkstats/internal/analytics"
	"github.com/tomtom215/parkstats/internal/cache"
	"github.com/tomtom215/parkstats/internal/calendar"
	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/metrics"
	"github.com/tomtom215/parkstats/internal/milestones"
	"github.com/tomtom215/parkstats/internal/models"
)

// Operation names used for cache keys and metric labels.
const (
	OpVenueStats   = "venue_stats"
	OpActivityDays = "activity_days"
)

// Engine computes statistics from record collections.
// It is safe for concurrent use.
type Engine struct {
	logger     zerolog.Logger
	cache      *cache.Cache
	registry   *geo.Registry
	classifier *geo.Classifier
	location   *time.Location
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	registry *geo.Registry
	clock    func() time.Time
}

// WithRegistry replaces the default coordinate registry.
func WithRegistry(r *geo.Registry) Option {
	return func(o *engineOptions) { o.registry = r }
}

// WithClock overrides the cache time source.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) { o.clock = now }
}

// NewEngine creates an engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	loc, err := cfg.location()
	if err != nil {
		return nil, err
	}

	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = geo.DefaultRegistry()
	}

	var cacheOpts []cache.Option
	if o.clock != nil {
		cacheOpts = append(cacheOpts, cache.WithClock(o.clock))
	}

	metrics.RegistryVenues.Set(float64(o.registry.Len()))

	return &Engine{
		logger:     logger.With().Str("component", "engine").Logger(),
		cache:      cache.New(cfg.CacheTTL, cacheOpts...),
		registry:   o.registry,
		classifier: geo.NewClassifier(o.registry),
		location:   loc,
	}, nil
}

// Registry returns the coordinate registry backing the engine.
func (e *Engine) Registry() *geo.Registry {
	return e.registry
}

// Classifier returns the region classifier backing the engine.
func (e *Engine) Classifier() *geo.Classifier {
	return e.classifier
}

// Location returns the time zone used for calendar day boundaries.
func (e *Engine) Location() *time.Location {
	return e.location
}

// CacheStats returns a snapshot of the memoization cache counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.cache.GetStats()
}

// memoize returns the cached value for key or computes and stores it.
// The second return value reports a cache hit.
func (e *Engine) memoize(op, key string, n int, compute func() interface{}) (interface{}, bool) {
	if data, ok := e.cache.Get(key); ok {
		metrics.RecordCacheLookup(op, true)
		e.logger.Trace().Str("operation", op).Str("key", key).Msg("cache hit")
		return data, true
	}
	metrics.RecordCacheLookup(op, false)

	start := time.Now()
	data := compute()
	elapsed := time.Since(start)

	e.cache.Set(key, data)
	metrics.RecordComputation(op, n, elapsed)
	metrics.CacheEntries.Set(float64(e.cache.Len()))

	e.logger.Debug().
		Str("operation", op).
		Int("records", n).
		Dur("duration", elapsed).
		Msg("computed and cached")
	return data, false
}

// VenueStats returns per-venue statistics, memoized.
func (e *Engine) VenueStats(runs []models.RunRecord) []models.VenueStats {
	stats, _ := e.VenueStatsCached(runs)
	return stats
}

// VenueStatsCached is VenueStats that also reports whether the result came
// from the cache.
func (e *Engine) VenueStatsCached(runs []models.RunRecord) ([]models.VenueStats, bool) {
	key := cache.Key(OpVenueStats, len(runs), cache.Fingerprint(runs))
	data, hit := e.memoize(OpVenueStats, key, len(runs), func() interface{} {
		return analytics.VenueStats(runs, e.registry)
	})

	return cloneVenueStats(data.([]models.VenueStats)), hit
}

// ActivityDays returns the dense activity calendar for year, memoized.
func (e *Engine) ActivityDays(runs []models.RunRecord, year int) []models.ActivityDay {
	days, _ := e.ActivityDaysCached(runs, year)
	return days
}

// ActivityDaysCached is ActivityDays that also reports whether the result
// came from the cache.
func (e *Engine) ActivityDaysCached(runs []models.RunRecord, year int) ([]models.ActivityDay, bool) {
	op := fmt.Sprintf("%s/%d", OpActivityDays, year)
	key := cache.Key(op, len(runs), cache.Fingerprint(runs))
	data, hit := e.memoize(OpActivityDays, key, len(runs), func() interface{} {
		return calendar.ActivityDays(runs, year, e.location)
	})

	return cloneActivityDays(data.([]models.ActivityDay)), hit
}

// cloneVenueStats copies a cached result deeply enough that callers cannot
// write through to the cache entry.
func cloneVenueStats(cached []models.VenueStats) []models.VenueStats {
	out := make([]models.VenueStats, len(cached))
	copy(out, cached)
	for i := range out {
		if out[i].Coordinate != nil {
			c := *out[i].Coordinate
			out[i].Coordinate = &c
		}
	}
	return out
}

// cloneActivityDays copies a cached calendar. ActivityDay holds only values,
// so a shallow copy suffices; a pointer field added later must be copied here
// the way cloneVenueStats copies Coordinate.
func cloneActivityDays(cached []models.ActivityDay) []models.ActivityDay {
	out := make([]models.ActivityDay, len(cached))
	copy(out, cached)
	return out
}

// ClearVenueStatsCache drops every memoized venue statistic. Call it after
// changing the registry so coordinates are re-resolved.
func (e *Engine) ClearVenueStatsCache() {
	removed := e.cache.DeletePrefix(OpVenueStats + ":")
	metrics.CacheClears.Inc()
	metrics.CacheEntries.Set(float64(e.cache.Len()))
	e.logger.Debug().Int("removed", removed).Msg("venue stats cache cleared")
}

// ClearCache drops every memoized result.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	metrics.CacheClears.Inc()
	metrics.CacheEntries.Set(0)
	e.logger.Debug().Msg("cache cleared")
}

// VolunteerStats returns per-role volunteering statistics.
func (e *Engine) VolunteerStats(volunteers []models.VolunteerRecord) []models.VolunteerStats {
	return analytics.VolunteerStats(volunteers)
}

// GeographicStats classifies the venues of runs into regions.
func (e *Engine) GeographicStats(runs []models.RunRecord) []models.GeographicStats {
	return analytics.GeographicStats(e.VenueStats(runs), e.classifier)
}

// Performance returns the time-based performance views of runs.
func (e *Engine) Performance(runs []models.RunRecord) models.PerformanceReport {
	return models.PerformanceReport{
		Series:      analytics.PerformanceSeries(runs),
		Annual:      analytics.AnnualPerformance(runs),
		Overall:     analytics.OverallStats(runs),
		Progression: analytics.PersonalBestProgression(runs),
	}
}

// Milestones returns every milestone achieved by the given records.
// Tourism counts distinct venue names across runs.
func (e *Engine) Milestones(runs []models.RunRecord, volunteers []models.VolunteerRecord) []models.Milestone {
	return milestones.Check(len(runs), len(volunteers), distinctVenues(runs))
}

// CheckMilestones evaluates raw counters.
func (e *Engine) CheckMilestones(totalRuns, volunteerCount, venueCount int) []models.Milestone {
	return milestones.Check(totalRuns, volunteerCount, venueCount)
}

// MapRegion frames the given venues, falling back to geo.DefaultMapRegion
// when none has a known coordinate.
func (e *Engine) MapRegion(venues []string) models.MapRegion {
	if region, ok := e.registry.MapRegion(venues); ok {
		return region
	}
	return geo.DefaultMapRegion
}

// Locate resolves a venue's coordinate and region.
func (e *Engine) Locate(venue string) models.VenueLocation {
	return e.classifier.Location(venue)
}

// Nearby lists registry venues within radiusKm of venue. The second return
// value is false when venue has no known coordinate.
func (e *Engine) Nearby(venue string, radiusKm float64) ([]models.NearbyVenue, bool) {
	c, ok := e.registry.Coordinate(venue)
	if !ok {
		return nil, false
	}
	return e.registry.Nearby(c, radiusKm), true
}

// ReloadRegistry registers venue overrides and invalidates cached venue
// statistics, which embed coordinates.
func (e *Engine) ReloadRegistry(entries []geo.VenueEntry) {
	for _, v := range entries {
		e.registry.Register(v.Name, v.Coordinate)
	}
	metrics.RecordRegistryReload(nil, e.registry.Len())
	e.ClearVenueStatsCache()
	e.logger.Info().
		Int("overrides", len(entries)).
		Int("venues", e.registry.Len()).
		Msg("registry reloaded")
}

// Summary computes every statistic for one profile. A year of zero selects
// the most recent year with a run, or the current year when there is none.
func (e *Engine) Summary(runs []models.RunRecord, volunteers []models.VolunteerRecord, year int) models.ProfileSummary {
	if year == 0 {
		year = e.DefaultYear(runs)
	}

	venues := e.VenueStats(runs)
	names := make([]string, len(venues))
	for i, v := range venues {
		names[i] = v.Venue
	}

	return models.ProfileSummary{
		Venues:       venues,
		Volunteering: e.VolunteerStats(volunteers),
		Geographic:   analytics.GeographicStats(venues, e.classifier),
		Performance:  e.Performance(runs),
		Milestones:   milestones.Check(len(runs), len(volunteers), len(venues)),
		Calendar:     e.ActivityDays(runs, year),
		Year:         year,
		MapRegion:    e.MapRegion(names),
	}
}

// DefaultYear returns the most recent year with a parsable run date, or the
// current year in the engine's timezone when there is none.
func (e *Engine) DefaultYear(runs []models.RunRecord) int {
	if years := analytics.YearsActive(runs); len(years) > 0 {
		return years[0]
	}
	return time.Now().In(e.location).Year()
}

func distinctVenues(runs []models.RunRecord) int {
	seen := make(map[string]struct{}, len(runs))
	for i := range runs {
		seen[runs[i].Venue] = struct{}{}
	}
	return len(seen)
}
