// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/parkstats/internal/logging"
	"github.com/tomtom215/parkstats/internal/metrics"
	"github.com/tomtom215/parkstats/internal/models"
)

// TimeInMinutes converts an elapsed time to decimal minutes.
// MM:SS and H:MM:SS are accepted; anything else, including negative or
// non-numeric parts, yields 0.
func TimeInMinutes(text string) float64 {
	parts := strings.Split(strings.TrimSpace(text), ":")

	values := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		values[i] = n
	}

	switch len(values) {
	case 2:
		return float64(values[0]) + float64(values[1])/60
	case 3:
		return float64(values[0]*60+values[1]) + float64(values[2])/60
	default:
		return 0
	}
}

// FormatMinutes renders decimal minutes as MM:SS, or H:MM:SS from one hour
// up. Non-positive input renders as an empty string.
func FormatMinutes(minutes float64) string {
	if minutes <= 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return ""
	}

	total := int(math.Round(minutes * 60))
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseDate parses a record date in UTC. See ParseDateIn.
func ParseDate(text string) (time.Time, bool) {
	return ParseDateIn(text, time.UTC)
}

// ParseDateIn parses a DD/MM/YYYY record date as midnight in loc.
// A date that fails to parse is logged at debug level and reported as
// false; callers decide the fallback.
func ParseDateIn(text string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(text), loc)
	if err != nil {
		metrics.UnparsableDates.Inc()
		logging.Debug().Str("date", text).Msg("Unparsable record date")
		return time.Time{}, false
	}
	return t, true
}
