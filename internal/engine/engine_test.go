// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package engine

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	e, err := NewEngine(nil, zerolog.Nop(), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e, clock
}

func runs() []models.RunRecord {
	return []models.RunRecord{
		{Venue: "Bushy parkrun", Date: "06/01/2024", Time: "24:10"},
		{Venue: "Whiteley parkrun", Date: "13/01/2024", Time: "23:45"},
		{Venue: "Bushy parkrun", Date: "20/01/2024", Time: "23:30"},
		{Venue: "Keswick parkrun", Date: "27/01/2024", Time: "26:02"},
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *Config
	}{
		{"zero ttl", &Config{CacheTTL: 0, Timezone: "UTC"}},
		{"bad timezone", &Config{CacheTTL: time.Minute, Timezone: "Mars/Olympus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewEngine(tt.cfg, zerolog.Nop()); err == nil {
				t.Error("NewEngine() should fail")
			}
		})
	}
}

func TestEngine_VenueStatsMemoized(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	records := runs()

	first, hit := e.VenueStatsCached(records)
	if hit {
		t.Error("first call should be a miss")
	}
	second, hit := e.VenueStatsCached(records)
	if !hit {
		t.Error("second call within TTL should be a hit")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from computed result")
	}

	stats := e.CacheStats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("cache stats = %d hits / %d misses, want 1/1", stats.Hits, stats.Misses)
	}
}

func TestEngine_TTLExpiry(t *testing.T) {
	t.Parallel()

	e, clock := newTestEngine(t)
	records := runs()

	e.VenueStats(records)

	clock.Advance(10*time.Minute - time.Second)
	if _, hit := e.VenueStatsCached(records); !hit {
		t.Error("entry younger than TTL should be a hit")
	}

	clock.Advance(time.Second)
	if _, hit := e.VenueStatsCached(records); hit {
		t.Error("entry aged exactly TTL should be a miss")
	}

	// The miss refreshed the timestamp.
	if _, hit := e.VenueStatsCached(records); !hit {
		t.Error("recomputed entry should be fresh")
	}
}

func TestEngine_ChangedInputMisses(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	records := runs()
	e.VenueStats(records)

	changed := runs()
	changed[0].Time = "20:00"
	if _, hit := e.VenueStatsCached(changed); hit {
		t.Error("changed records should not hit the cache")
	}

	grown := append(runs(), models.RunRecord{Venue: "York parkrun", Date: "03/02/2024", Time: "25:00"})
	if _, hit := e.VenueStatsCached(grown); hit {
		t.Error("longer collection should not hit the cache")
	}
}

func TestEngine_ClearVenueStatsCache(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	records := runs()

	e.VenueStats(records)
	e.ActivityDays(records, 2024)

	e.ClearVenueStatsCache()

	if _, hit := e.VenueStatsCached(records); hit {
		t.Error("venue stats should be recomputed after ClearVenueStatsCache")
	}
	if _, hit := e.ActivityDaysCached(records, 2024); !hit {
		t.Error("activity days should survive ClearVenueStatsCache")
	}

	e.ClearCache()
	if _, hit := e.ActivityDaysCached(records, 2024); hit {
		t.Error("activity days should be recomputed after ClearCache")
	}
}

func TestEngine_ResultIsolatedFromCache(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	records := runs()

	first := e.VenueStats(records)
	var located *models.VenueStats
	for i := range first {
		if first[i].Coordinate != nil {
			located = &first[i]
			break
		}
	}
	if located == nil {
		t.Fatal("expected at least one venue with a coordinate")
	}
	venue, lat := located.Venue, located.Coordinate.Lat
	first[0].Venue = "mutated"
	located.Coordinate.Lat = 0

	second := e.VenueStats(records)
	if second[0].Venue == "mutated" {
		t.Error("mutating a returned slice changed the cached result")
	}
	for _, vs := range second {
		if vs.Venue == venue && (vs.Coordinate == nil || vs.Coordinate.Lat != lat) {
			t.Errorf("%s coordinate = %+v after caller mutation, want lat %v", venue, vs.Coordinate, lat)
		}
	}

	days := e.ActivityDays(records, 2024)
	days[0].Venue = "mutated"
	if again := e.ActivityDays(records, 2024); again[0].Venue == "mutated" {
		t.Error("mutating a returned calendar changed the cached result")
	}
}

func TestEngine_ActivityDays(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	records := runs()

	if got := len(e.ActivityDays(records, 2024)); got != 366 {
		t.Errorf("ActivityDays(2024) len = %d, want 366", got)
	}
	if got := len(e.ActivityDays(records, 2025)); got != 365 {
		t.Errorf("ActivityDays(2025) len = %d, want 365", got)
	}
	if got := len(e.ActivityDays(nil, 2025)); got != 365 {
		t.Errorf("ActivityDays(nil, 2025) len = %d, want 365", got)
	}

	// Each year is cached separately.
	if _, hit := e.ActivityDaysCached(records, 2024); !hit {
		t.Error("2024 calendar should be cached")
	}
}

func TestEngine_EmptyInputs(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	if got := e.VenueStats(nil); len(got) != 0 {
		t.Errorf("VenueStats(nil) = %v", got)
	}
	if got := e.VolunteerStats(nil); len(got) != 0 {
		t.Errorf("VolunteerStats(nil) = %v", got)
	}
	if got := e.GeographicStats(nil); len(got) != 0 {
		t.Errorf("GeographicStats(nil) = %v", got)
	}
	if got := e.Milestones(nil, nil); len(got) != 0 {
		t.Errorf("Milestones(nil) = %v", got)
	}
}

func TestEngine_GeographicStats(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	stats := e.GeographicStats(runs())

	got := make(map[string]int)
	for _, s := range stats {
		got[s.Region] = s.TotalRuns
	}
	want := map[string]int{geo.RegionLondon: 2, geo.RegionHampshire: 1, geo.RegionLakeDistrict: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("regions = %v, want %v", got, want)
	}
}

func TestEngine_Milestones(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	got := e.CheckMilestones(120, 0, 0)
	if len(got) != 3 || got[0].Threshold != 25 || got[2].Threshold != 100 {
		t.Errorf("CheckMilestones(120,0,0) = %+v, want 25, 50 and 100 runs", got)
	}

	records := make([]models.RunRecord, 0, 30)
	for i := 0; i < 30; i++ {
		records = append(records, models.RunRecord{
			Venue: fmt.Sprintf("Venue %d", i%12),
			Date:  "06/01/2024",
			Time:  "25:00",
		})
	}
	ms := e.Milestones(records, nil)
	keys := make([]string, 0, len(ms))
	for _, m := range ms {
		keys = append(keys, m.Key)
	}
	if !reflect.DeepEqual(keys, []string{"running_25", "tourism_10"}) {
		t.Errorf("Milestones() keys = %v", keys)
	}
}

func TestEngine_ReloadRegistry(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t, WithRegistry(geo.NewRegistry(nil)))
	records := []models.RunRecord{{Venue: "Home parkrun", Date: "06/01/2024", Time: "25:00"}}

	if stats := e.VenueStats(records); stats[0].Coordinate != nil {
		t.Fatalf("coordinate = %+v before registration, want nil", stats[0].Coordinate)
	}

	e.ReloadRegistry([]geo.VenueEntry{{Name: "Home parkrun", Coordinate: models.Coordinate{Lat: 51.5, Lon: -0.1}}})

	stats, hit := e.VenueStatsCached(records)
	if hit {
		t.Error("reload should invalidate cached venue stats")
	}
	if stats[0].Coordinate == nil || stats[0].Coordinate.Lat != 51.5 {
		t.Errorf("coordinate after reload = %+v", stats[0].Coordinate)
	}
}

func TestEngine_MapRegionAndLocate(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)

	if got := e.MapRegion([]string{"Nowhere"}); got != geo.DefaultMapRegion {
		t.Errorf("MapRegion(unknown) = %+v, want default", got)
	}
	if got := e.MapRegion([]string{"Keswick parkrun"}); got.Center.Lat != 54.6013 {
		t.Errorf("MapRegion(Keswick) = %+v", got)
	}

	loc := e.Locate("Keswick parkrun")
	if loc.Region != geo.RegionLakeDistrict || loc.Coordinate == nil {
		t.Errorf("Locate(Keswick) = %+v", loc)
	}

	if _, ok := e.Nearby("Nowhere", 10); ok {
		t.Error("Nearby(unknown) should report false")
	}
	near, ok := e.Nearby("Whiteley", 12)
	if !ok || len(near) == 0 || near[0].Name != "Whiteley parkrun" {
		t.Errorf("Nearby(Whiteley) = %v, %v", near, ok)
	}
}

func TestEngine_Summary(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	volunteers := []models.VolunteerRecord{{Role: "Marshal", Venue: "Bushy parkrun", Date: "03/02/2024"}}

	s := e.Summary(runs(), volunteers, 0)

	if s.Year != 2024 {
		t.Errorf("Year = %d, want 2024 (most recent run)", s.Year)
	}
	if len(s.Calendar) != 366 {
		t.Errorf("Calendar len = %d, want 366", len(s.Calendar))
	}
	if len(s.Venues) != 3 || s.Venues[0].Venue != "Bushy parkrun" {
		t.Errorf("Venues = %+v", s.Venues)
	}
	if len(s.Volunteering) != 1 || len(s.Geographic) != 3 {
		t.Errorf("Volunteering/Geographic len = %d/%d", len(s.Volunteering), len(s.Geographic))
	}
	if len(s.Performance.Series) != 4 || s.Performance.Overall.TotalRuns != 4 {
		t.Errorf("Performance = %+v", s.Performance)
	}
	if s.MapRegion == geo.DefaultMapRegion {
		t.Error("MapRegion should frame the known venues")
	}

	if got := e.Summary(runs(), nil, 2025); got.Year != 2025 || len(got.Calendar) != 365 {
		t.Errorf("explicit year summary = %d/%d", got.Year, len(got.Calendar))
	}
}

func TestEngine_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	records := runs()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e.VenueStats(records)
			e.ActivityDays(records, 2024)
			if i%4 == 0 {
				e.ClearVenueStatsCache()
			}
		}(i)
	}
	wg.Wait()
}
