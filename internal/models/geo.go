// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package models

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapRegion frames a set of coordinates for map display.
type MapRegion struct {
	Center  Coordinate `json:"center"`
	LatSpan float64    `json:"lat_span"`
	LonSpan float64    `json:"lon_span"`
}

// NearbyVenue is a registry venue found by a proximity query.
type NearbyVenue struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
	DistanceKm float64    `json:"distance_km"`
}

// VenueLocation is the API view of a single registry lookup.
type VenueLocation struct {
	Name       string      `json:"name"`
	Region     string      `json:"region"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}
