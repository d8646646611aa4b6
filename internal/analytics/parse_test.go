// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/parkstats/internal/metrics"
)

func TestTimeInMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"24:24", 24.4},
		{"17:00", 17},
		{"00:30", 0.5},
		{" 21:15 ", 21.25},
		{"1:02:03", 62.05},
		{"bad-value", 0},
		{"", 0},
		{"24", 0},
		{"24:", 0},
		{"ab:cd", 0},
		{"24:2x", 0},
		{"-1:30", 0},
		{"1:2:3:4", 0},
		{"24.5:10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := TimeInMinutes(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TimeInMinutes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{24.4, "24:24"},
		{17, "17:00"},
		{0.5, "00:30"},
		{62.05, "1:02:03"},
		{59.999, "1:00:00"},
		{0, ""},
		{-3, ""},
		{math.NaN(), ""},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.in); got != tt.want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, ok := ParseDate("29/02/2024")
	if !ok {
		t.Fatal("ParseDate('29/02/2024') should succeed")
	}
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "2024-02-29", "29/02/2023", "31/04/2024", "1/2/24", "garbage"} {
		if _, ok := ParseDate(bad); ok {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestParseDateIn(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+10", 10*60*60)
	got, ok := ParseDateIn("01/06/2025", loc)
	if !ok {
		t.Fatal("ParseDateIn should succeed")
	}
	if got.Location() != loc || got.Day() != 1 || got.Hour() != 0 {
		t.Errorf("ParseDateIn = %v, want midnight 1 June in %s", got, loc)
	}

	if got, ok := ParseDateIn("01/06/2025", nil); !ok || got.Location() != time.UTC {
		t.Errorf("ParseDateIn(nil loc) = %v, %v; want UTC", got, ok)
	}
}

func TestParseDate_CountsUnparsable(t *testing.T) {
	before := testutil.ToFloat64(metrics.UnparsableDates)
	ParseDate("not a date")
	after := testutil.ToFloat64(metrics.UnparsableDates)

	if after-before < 1 {
		t.Errorf("UnparsableDates increased by %v, want at least 1", after-before)
	}
}
