// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/models"
)

func run(venue, date, elapsed string) models.RunRecord {
	return models.RunRecord{Venue: venue, Date: date, Time: elapsed}
}

func sampleRuns() []models.RunRecord {
	return []models.RunRecord{
		run("Bushy parkrun", "06/01/2024", "24:10"),
		run("Whiteley parkrun", "13/01/2024", "23:45"),
		run("Bushy parkrun", "20/01/2024", "23:30"),
		run("Keswick parkrun", "27/01/2024", "26:02"),
		run("Whiteley parkrun", "03/02/2024", "22:58"),
		run("Bushy parkrun", "10/02/2024", "bad"),
	}
}

func TestVenueStats_Ranking(t *testing.T) {
	t.Parallel()

	stats := VenueStats(sampleRuns(), nil)

	want := []struct {
		venue string
		count int
		best  string
	}{
		{"Bushy parkrun", 3, "23:30"},
		{"Whiteley parkrun", 2, "22:58"},
		{"Keswick parkrun", 1, "26:02"},
	}

	if len(stats) != len(want) {
		t.Fatalf("len(stats) = %d, want %d", len(stats), len(want))
	}
	for i, w := range want {
		if stats[i].Venue != w.venue || stats[i].RunCount != w.count || stats[i].BestTime != w.best {
			t.Errorf("stats[%d] = {%s %d %s}, want {%s %d %s}",
				i, stats[i].Venue, stats[i].RunCount, stats[i].BestTime, w.venue, w.count, w.best)
		}
	}
	if math.Abs(stats[1].BestTimeMinutes-(22+58.0/60)) > 1e-9 {
		t.Errorf("BestTimeMinutes = %v", stats[1].BestTimeMinutes)
	}
}

func TestVenueStats_PercentagesSumTo100(t *testing.T) {
	t.Parallel()

	inputs := [][]models.RunRecord{
		sampleRuns(),
		{run("A", "01/01/2024", "20:00")},
		{run("A", "x", "x"), run("B", "x", "x"), run("C", "x", "x")},
	}

	for i, records := range inputs {
		sum := 0.0
		for _, s := range VenueStats(records, nil) {
			sum += s.Percentage
		}
		if math.Abs(sum-100) > 1e-9 {
			t.Errorf("input %d: percentages sum to %v, want 100", i, sum)
		}
	}
}

func TestVenueStats_TieBreakByName(t *testing.T) {
	t.Parallel()

	records := []models.RunRecord{
		run("Zeta", "01/01/2024", "20:00"),
		run("Alpha", "02/01/2024", "20:00"),
		run("Mu", "03/01/2024", "20:00"),
	}

	stats := VenueStats(records, nil)
	got := []string{stats[0].Venue, stats[1].Venue, stats[2].Venue}
	want := []string{"Alpha", "Mu", "Zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestVenueStats_MostRecentDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []models.RunRecord
		want    string
	}{
		{
			name: "latest parsed date",
			records: []models.RunRecord{
				run("A", "05/03/2024", "20:00"),
				run("A", "12/12/2023", "20:00"),
				run("A", "01/04/2024", "20:00"),
			},
			want: "01/04/2024",
		},
		{
			name: "unparsable sorts earliest",
			records: []models.RunRecord{
				run("A", "garbage", "20:00"),
				run("A", "01/01/2020", "20:00"),
			},
			want: "01/01/2020",
		},
		{
			name: "all unparsable keeps first",
			records: []models.RunRecord{
				run("A", "first", "20:00"),
				run("A", "second", "20:00"),
			},
			want: "first",
		},
		{
			name: "equal dates keep first",
			records: []models.RunRecord{
				run("A", "01/01/2024", "20:00"),
				run("A", " 01/01/2024", "21:00"),
			},
			want: "01/01/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stats := VenueStats(tt.records, nil)
			if stats[0].MostRecentDate != tt.want {
				t.Errorf("MostRecentDate = %q, want %q", stats[0].MostRecentDate, tt.want)
			}
		})
	}
}

func TestVenueStats_AllTimesMalformed(t *testing.T) {
	t.Parallel()

	stats := VenueStats([]models.RunRecord{run("A", "01/01/2024", "DNF")}, nil)
	if stats[0].BestTime != "" || stats[0].BestTimeMinutes != 0 {
		t.Errorf("best = %q/%v, want empty/0", stats[0].BestTime, stats[0].BestTimeMinutes)
	}
}

func TestVenueStats_Empty(t *testing.T) {
	t.Parallel()

	stats := VenueStats(nil, nil)
	if stats == nil || len(stats) != 0 {
		t.Errorf("VenueStats(nil) = %v, want empty non-nil slice", stats)
	}
}

func TestVenueStats_Coordinates(t *testing.T) {
	t.Parallel()

	stats := VenueStats([]models.RunRecord{
		run("Keswick parkrun", "01/01/2024", "25:00"),
		run("Some Unknown Village parkrun", "02/01/2024", "25:00"),
	}, geo.DefaultRegistry())

	for _, s := range stats {
		switch s.Venue {
		case "Keswick parkrun":
			if s.Coordinate == nil || s.Coordinate.Lat != 54.6013 {
				t.Errorf("Keswick coordinate = %+v", s.Coordinate)
			}
		default:
			if s.Coordinate != nil {
				t.Errorf("%s coordinate = %+v, want nil", s.Venue, s.Coordinate)
			}
		}
	}
}

func TestVenueStats_Deterministic(t *testing.T) {
	t.Parallel()

	records := sampleRuns()
	first := VenueStats(records, geo.DefaultRegistry())
	second := VenueStats(records, geo.DefaultRegistry())

	if !reflect.DeepEqual(first, second) {
		t.Error("VenueStats should be deterministic for unchanged input")
	}
}
