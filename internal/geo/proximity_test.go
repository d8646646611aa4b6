// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import (
	"math"
	"testing"

	"github.com/tomtom215/parkstats/internal/models"
)

func TestHaversine(t *testing.T) {
	t.Parallel()

	london := models.Coordinate{Lat: 51.5074, Lon: -0.1278}
	paris := models.Coordinate{Lat: 48.8566, Lon: 2.3522}

	d := Haversine(london, paris)
	if math.Abs(d-343.5) > 2 {
		t.Errorf("Haversine(London, Paris) = %.1f km, want ~343.5", d)
	}
	if Haversine(london, london) != 0 {
		t.Error("distance to self should be 0")
	}
	if math.Abs(Haversine(london, paris)-Haversine(paris, london)) > 1e-9 {
		t.Error("Haversine should be symmetric")
	}
}

func TestRegistry_Nearby(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	whiteley, _ := reg.Coordinate("Whiteley parkrun")

	got := reg.Nearby(whiteley, 12)
	want := []string{"Whiteley parkrun", "Netley Abbey parkrun", "Southampton parkrun"}

	if len(got) != len(want) {
		t.Fatalf("Nearby() returned %d venues (%v), want %d", len(got), got, len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Nearby()[%d] = %q, want %q", i, got[i].Name, name)
		}
		if got[i].DistanceKm > 12 {
			t.Errorf("Nearby()[%d] distance %.2f exceeds radius", i, got[i].DistanceKm)
		}
	}
	if got[0].DistanceKm != 0 {
		t.Errorf("self distance = %f, want 0", got[0].DistanceKm)
	}
}

func TestRegistry_NearbyHighLatitude(t *testing.T) {
	t.Parallel()

	// At 60N a degree of longitude is roughly half a degree of latitude, so
	// a 50km radius spans more grid columns than rows.
	reg := NewRegistry([]VenueEntry{
		{"Centre parkrun", models.Coordinate{Lat: 60.0, Lon: 10.0}},
		{"East parkrun", models.Coordinate{Lat: 60.0, Lon: 10.8}},
		{"Far parkrun", models.Coordinate{Lat: 60.0, Lon: 12.0}},
	})

	got := reg.Nearby(models.Coordinate{Lat: 60.0, Lon: 10.0}, 50)
	if len(got) != 2 {
		t.Fatalf("Nearby() = %v, want Centre and East", got)
	}
	if got[1].Name != "East parkrun" {
		t.Errorf("Nearby()[1] = %q, want East parkrun", got[1].Name)
	}
}

func TestRegistry_NearbyEmpty(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	if got := reg.Nearby(models.Coordinate{Lat: 0, Lon: -30}, 100); len(got) != 0 {
		t.Errorf("Nearby(mid Atlantic) = %v, want empty", got)
	}
	if got := reg.Nearby(models.Coordinate{Lat: 51, Lon: -1}, -1); got != nil {
		t.Errorf("Nearby(negative radius) = %v, want nil", got)
	}
}

func TestSpatialGrid_Remove(t *testing.T) {
	t.Parallel()

	g := newSpatialGrid(10)
	g.insert("a", models.Coordinate{Lat: 51, Lon: -1})
	g.remove("a")
	g.remove("missing")

	if len(g.cells) != 0 || len(g.points) != 0 {
		t.Errorf("grid not empty after remove: cells=%d points=%d", len(g.cells), len(g.points))
	}
}
