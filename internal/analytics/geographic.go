// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"sort"

	"github.com/tomtom215/parkstats/internal/geo"
	"github.com/tomtom215/parkstats/internal/models"
)

// RegionClassifier assigns a region label to a venue name.
// *geo.Classifier implements it.
type RegionClassifier interface {
	Region(venue string) string
}

// GeographicStats groups venue statistics by region.
// Venues within a region keep the order of the input list. A nil classifier
// classifies by keyword only.
func GeographicStats(venues []models.VenueStats, classifier RegionClassifier) []models.GeographicStats {
	if len(venues) == 0 {
		return []models.GeographicStats{}
	}
	if classifier == nil {
		classifier = geo.NewClassifier(nil)
	}

	groups := make(map[string]*models.GeographicStats)
	for _, v := range venues {
		region := classifier.Region(v.Venue)
		g, ok := groups[region]
		if !ok {
			g = &models.GeographicStats{Region: region, Venues: []string{}}
			groups[region] = g
		}
		g.VenueCount++
		g.TotalRuns += v.RunCount
		g.Venues = append(g.Venues, v.Venue)
	}

	stats := make([]models.GeographicStats, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, *g)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].VenueCount != stats[j].VenueCount {
			return stats[i].VenueCount > stats[j].VenueCount
		}
		if stats[i].TotalRuns != stats[j].TotalRuns {
			return stats[i].TotalRuns > stats[j].TotalRuns
		}
		return stats[i].Region < stats[j].Region
	})

	return stats
}
