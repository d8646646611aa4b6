// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/models"
)

type venueGroup struct {
	name        string
	count       int
	bestMinutes float64
	bestTime    string
	recent      time.Time
	recentText  string
}

// VenueStats groups runs by venue and ranks venues by run count.
//
// The best time is the fastest parsable time at the venue. The most recent
// date treats unparsable dates as the earliest possible date and keeps the
// first record among equal dates. lookup attaches coordinates and may be nil.
func VenueStats(records []models.RunRecord, lookup geo.Locator) []models.VenueStats {
	if len(records) == 0 {
		return []models.VenueStats{}
	}

	groups := make(map[string]*venueGroup)
	order := make([]string, 0)

	for i := range records {
		r := &records[i]

		g, ok := groups[r.Venue]
		if !ok {
			g = &venueGroup{name: r.Venue}
			groups[r.Venue] = g
			order = append(order, r.Venue)
		}
		g.count++

		if m := TimeInMinutes(r.Time); m > 0 && (g.bestMinutes == 0 || m < g.bestMinutes) {
			g.bestMinutes = m
			g.bestTime = strings.TrimSpace(r.Time)
		}

		// Unparsable dates stay at the zero time, the earliest instant.
		date, _ := ParseDate(r.Date)
		if g.count == 1 || date.After(g.recent) {
			g.recent = date
			g.recentText = r.Date
		}
	}

	total := float64(len(records))
	stats := make([]models.VenueStats, 0, len(groups))
	for _, name := range order {
		g := groups[name]
		vs := models.VenueStats{
			Venue:           g.name,
			RunCount:        g.count,
			BestTime:        g.bestTime,
			BestTimeMinutes: g.bestMinutes,
			Percentage:      float64(g.count) / total * 100,
			MostRecentDate:  g.recentText,
		}
		if lookup != nil {
			if c, ok := lookup.Coordinate(g.name); ok {
				vs.Coordinate = &c
			}
		}
		stats = append(stats, vs)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RunCount != stats[j].RunCount {
			return stats[i].RunCount > stats[j].RunCount
		}
		return stats[i].Venue < stats[j].Venue
	})

	return stats
}
