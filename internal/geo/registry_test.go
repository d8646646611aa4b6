// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import (
	"math"
	"sync"
	"testing"

	"github.com/tomtom215/parkstats/internal/models"
)

func TestRegistry_ExactLookup(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	c, ok := reg.Coordinate("Keswick parkrun")
	if !ok {
		t.Fatal("Coordinate('Keswick parkrun') should be found")
	}
	if c.Lat != 54.6013 || c.Lon != -3.1347 {
		t.Errorf("Keswick = %+v, want {54.6013 -3.1347}", c)
	}
}

func TestRegistry_FuzzyLookup(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	want, ok := reg.Coordinate("Whiteley parkrun")
	if !ok {
		t.Fatal("Whiteley parkrun should be in the default table")
	}

	tests := []struct {
		name  string
		query string
	}{
		{"bare name", "Whiteley"},
		{"lower case", "whiteley"},
		{"padded", "  Whiteley  "},
		{"upper suffix", "WHITELEY PARKRUN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Coordinate(tt.query)
			if !ok {
				t.Fatalf("Coordinate(%q) not found", tt.query)
			}
			if got != want {
				t.Errorf("Coordinate(%q) = %+v, want %+v", tt.query, got, want)
			}
		})
	}
}

func TestRegistry_FuzzyLookupFirstEntryWins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry([]VenueEntry{
		{"Riverside North parkrun", models.Coordinate{Lat: 1, Lon: 1}},
		{"Riverside South parkrun", models.Coordinate{Lat: 2, Lon: 2}},
	})

	c, ok := reg.Coordinate("Riverside")
	if !ok {
		t.Fatal("Coordinate('Riverside') should match")
	}
	if c.Lat != 1 {
		t.Errorf("fuzzy match returned %+v, want first table entry", c)
	}
}

func TestRegistry_UnknownAndEmpty(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	for _, q := range []string{"", "   ", "parkrun", "Some Unknown Village parkrun"} {
		if _, ok := reg.Coordinate(q); ok {
			t.Errorf("Coordinate(%q) should not be found", q)
		}
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}

	reg.Register("Test parkrun", models.Coordinate{Lat: 51.0, Lon: -1.0})
	reg.Register("Other parkrun", models.Coordinate{Lat: 52.0, Lon: -1.0})
	reg.Register("Test parkrun", models.Coordinate{Lat: 53.0, Lon: -2.0})

	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
	names := reg.Names()
	if names[0] != "Test parkrun" || names[1] != "Other parkrun" {
		t.Errorf("Names() = %v, want table order preserved", names)
	}

	c, _ := reg.Coordinate("Test parkrun")
	if c.Lat != 53.0 {
		t.Errorf("re-registered Lat = %f, want 53.0", c.Lat)
	}

	// The grid must follow the move.
	if got := reg.Nearby(models.Coordinate{Lat: 51.0, Lon: -1.0}, 5); len(got) != 0 {
		t.Errorf("Nearby(old position) = %v, want empty", got)
	}
	if got := reg.Nearby(models.Coordinate{Lat: 53.0, Lon: -2.0}, 5); len(got) != 1 {
		t.Errorf("Nearby(new position) len = %d, want 1", len(got))
	}
}

func TestRegistry_MapRegion(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	t.Run("padded bounding box", func(t *testing.T) {
		region, ok := reg.MapRegion([]string{"Whiteley parkrun", "Netley Abbey parkrun", "Nowhere parkrun"})
		if !ok {
			t.Fatal("MapRegion should succeed when at least one venue is known")
		}
		assertFloat(t, "Center.Lat", region.Center.Lat, (50.8849+50.8700)/2)
		assertFloat(t, "Center.Lon", region.Center.Lon, (-1.2477+-1.3560)/2)
		assertFloat(t, "LonSpan", region.LonSpan, (1.3560-1.2477)*RegionPadding)
		// Latitude difference is below the floor once padded.
		assertFloat(t, "LatSpan", region.LatSpan, MinimumSpan)
	})

	t.Run("single venue uses minimum span", func(t *testing.T) {
		region, ok := reg.MapRegion([]string{"Keswick parkrun"})
		if !ok {
			t.Fatal("MapRegion should succeed")
		}
		if region.LatSpan != MinimumSpan || region.LonSpan != MinimumSpan {
			t.Errorf("spans = %f/%f, want %f", region.LatSpan, region.LonSpan, MinimumSpan)
		}
		if region.Center.Lat != 54.6013 {
			t.Errorf("Center.Lat = %f, want 54.6013", region.Center.Lat)
		}
	})

	t.Run("no known venue", func(t *testing.T) {
		if _, ok := reg.MapRegion([]string{"Nowhere parkrun"}); ok {
			t.Error("MapRegion should fail when no venue is known")
		}
		if _, ok := reg.MapRegion(nil); ok {
			t.Error("MapRegion(nil) should fail")
		}
	})
}

func TestDefaultMapRegion(t *testing.T) {
	t.Parallel()

	if DefaultMapRegion.Center.Lat != 54.0 || DefaultMapRegion.Center.Lon != -2.5 {
		t.Errorf("DefaultMapRegion center = %+v", DefaultMapRegion.Center)
	}
	if DefaultMapRegion.LatSpan != 10 || DefaultMapRegion.LonSpan != 10 {
		t.Errorf("DefaultMapRegion spans = %f/%f, want 10/10", DefaultMapRegion.LatSpan, DefaultMapRegion.LonSpan)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			reg.Register("Concurrent parkrun", models.Coordinate{Lat: 50 + float64(i)/10, Lon: -1})
		}(i)
		go func() {
			defer wg.Done()
			reg.Coordinate("Whiteley")
			reg.Nearby(models.Coordinate{Lat: 50.9, Lon: -1.2}, 20)
		}()
	}
	wg.Wait()

	if _, ok := reg.Coordinate("Concurrent parkrun"); !ok {
		t.Error("concurrently registered venue should be found")
	}
}

func TestNormalizeVenueName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Bushy parkrun", "bushy"},
		{"  Bushy Parkrun ", "bushy"},
		{"Albert parkrun, Melbourne", "albert parkrun, melbourne"},
		{"parkrun", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeVenueName(tt.in); got != tt.want {
			t.Errorf("NormalizeVenueName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %.10f, want %.10f", name, got, want)
	}
}
