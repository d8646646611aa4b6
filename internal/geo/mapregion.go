// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import (
	"math"

	"github.com/tomtom215/parkstats/internal/models"
)

const (
	// MinimumSpan is the smallest latitude or longitude span, in degrees,
	// a map region is allowed to have.
	MinimumSpan = 0.05

	// RegionPadding scales the raw bounding box so markers are not drawn on
	// the map edge.
	RegionPadding = 1.2
)

// DefaultMapRegion frames the United Kingdom. It is used when no venue in a
// set has a known coordinate.
var DefaultMapRegion = models.MapRegion{
	Center:  models.Coordinate{Lat: 54.0, Lon: -2.5},
	LatSpan: 10.0,
	LonSpan: 10.0,
}

// BoundingRegion computes the padded map region enclosing coords.
// The second return value is false when coords is empty.
func BoundingRegion(coords []models.Coordinate) (models.MapRegion, bool) {
	if len(coords) == 0 {
		return models.MapRegion{}, false
	}

	minLat, maxLat := coords[0].Lat, coords[0].Lat
	minLon, maxLon := coords[0].Lon, coords[0].Lon
	for _, c := range coords[1:] {
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
		minLon = math.Min(minLon, c.Lon)
		maxLon = math.Max(maxLon, c.Lon)
	}

	return models.MapRegion{
		Center: models.Coordinate{
			Lat: (minLat + maxLat) / 2,
			Lon: (minLon + maxLon) / 2,
		},
		LatSpan: math.Max((maxLat-minLat)*RegionPadding, MinimumSpan),
		LonSpan: math.Max((maxLon-minLon)*RegionPadding, MinimumSpan),
	}, true
}
