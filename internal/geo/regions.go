// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import "github.com/tomtom215/parkstats/internal/models"

// Region labels.
const (
	RegionScotland        = "Scotland"
	RegionNorthernIreland = "Northern Ireland"
	RegionIreland         = "Ireland"
	RegionWales           = "Wales"
	RegionNorthEngland    = "North England"
	RegionYorkshire       = "Yorkshire & Humber"
	RegionPeakDistrict    = "Peak District"
	RegionLakeDistrict    = "Lake District"
	RegionWestMidlands    = "West Midlands"
	RegionEastMidlands    = "East Midlands"
	RegionEastEngland     = "East England"
	RegionLondon          = "London"
	RegionSouthWest       = "South West England"
	RegionHampshire       = "Hampshire"
	RegionSurrey          = "Surrey"
	RegionWestSussex      = "West Sussex"
	RegionKentEastSussex  = "Kent & East Sussex"
	RegionSouthCoast      = "South Coast"
	RegionEngland         = "England"
	RegionScandinavia     = "Scandinavia"
	RegionWesternEurope   = "Western Europe"
	RegionEasternEurope   = "Eastern Europe"
	RegionCanada          = "Canada"
	RegionUSAEast         = "USA East"
	RegionUSACentral      = "USA Central"
	RegionUSAWest         = "USA West"
	RegionAustralia       = "Australia"
	RegionNewZealand      = "New Zealand"
	RegionSouthAfrica     = "South Africa"
	RegionAsia            = "Asia"
	RegionInternational   = "International"
)

// midlandsLongitudeSplit divides the Midlands box into west and east.
const midlandsLongitudeSplit = -1.5

// box is an inclusive latitude/longitude rectangle.
type box struct {
	minLat, maxLat float64
	minLon, maxLon float64
}

func (b box) contains(c models.Coordinate) bool {
	return c.Lat >= b.minLat && c.Lat <= b.maxLat && c.Lon >= b.minLon && c.Lon <= b.maxLon
}

// regionRule is one (predicate, label) pair. Rules are evaluated in slice
// order and the first match wins.
type regionRule struct {
	label string
	match func(models.Coordinate) bool
}

func inAny(boxes ...box) func(models.Coordinate) bool {
	return func(c models.Coordinate) bool {
		for _, b := range boxes {
			if b.contains(c) {
				return true
			}
		}
		return false
	}
}

var (
	ukBox       = box{minLat: 49.5, maxLat: 61.0, minLon: -8.5, maxLon: 2.0}
	midlandsBox = box{minLat: 52.0, maxLat: 53.3, minLon: -3.2, maxLon: 0.0}
	oceaniaBox  = box{minLat: -48.0, maxLat: -9.0, minLon: 112.0, maxLon: 180.0}
	usaBox      = box{minLat: 24.0, maxLat: 49.5, minLon: -125.0, maxLon: -66.0}
)

// ukRules apply inside ukBox. Overlapping boxes are resolved by order.
var ukRules = []regionRule{
	{RegionScotland, func(c models.Coordinate) bool { return c.Lat >= 55.0 }},
	{RegionNorthernIreland, inAny(box{54.0, 55.3, -8.2, -5.4})},
	{RegionIreland, inAny(box{51.3, 55.5, -10.7, -6.0})},
	{RegionWales, inAny(box{51.35, 53.45, -5.4, -2.65})},
	{RegionNorthEngland, inAny(box{54.5, 55.0, -2.7, -0.5})},
	{RegionYorkshire, inAny(box{53.3, 54.5, -2.2, 0.2})},
	{RegionPeakDistrict, inAny(box{53.0, 53.6, -2.1, -1.5})},
	{RegionLakeDistrict, inAny(box{54.15, 54.75, -3.65, -2.65})},
	{RegionWestMidlands, func(c models.Coordinate) bool {
		return midlandsBox.contains(c) && c.Lon < midlandsLongitudeSplit
	}},
	{RegionEastMidlands, inAny(midlandsBox)},
	{RegionEastEngland, inAny(box{51.75, 53.0, -0.5, 1.8}, box{51.5, 51.75, 0.33, 1.8})},
	{RegionLondon, inAny(box{51.28, 51.70, -0.51, 0.33})},
	{RegionSouthWest, inAny(box{49.9, 51.75, -6.0, -2.0})},
	{RegionHampshire, inAny(box{50.7, 51.38, -1.80, -0.79})},
	{RegionSurrey, inAny(box{51.07, 51.47, -0.85, -0.05})},
	{RegionWestSussex, inAny(box{50.72, 51.07, -0.95, -0.2})},
	{RegionKentEastSussex, inAny(box{50.72, 51.5, -0.2, 1.5})},
	{RegionSouthCoast, inAny(box{50.5, 50.95, -2.0, 1.0})},
}

// internationalRules apply outside ukBox.
var internationalRules = []regionRule{
	{RegionIreland, inAny(box{51.3, 55.5, -10.7, -5.9})},
	{RegionScandinavia, inAny(box{54.5, 71.5, 4.5, 31.5})},
	{RegionWesternEurope, inAny(box{35.5, 55.0, -10.0, 15.0})},
	{RegionEasternEurope, inAny(box{40.0, 60.0, 15.0, 40.0})},
	{RegionCanada, inAny(
		box{49.0, 72.0, -141.0, -52.0},
		box{43.4, 46.0, -83.0, -76.0},
		box{45.0, 49.0, -76.0, -64.0},
	)},
	{RegionUSAEast, func(c models.Coordinate) bool { return usaBox.contains(c) && c.Lon >= -90.0 }},
	{RegionUSACentral, func(c models.Coordinate) bool { return usaBox.contains(c) && c.Lon >= -105.0 }},
	{RegionUSAWest, inAny(usaBox)},
	{RegionNewZealand, func(c models.Coordinate) bool {
		return oceaniaBox.contains(c) && c.Lat < -30.0 && c.Lon > 165.0
	}},
	{RegionAustralia, inAny(oceaniaBox)},
	{RegionSouthAfrica, inAny(box{-35.0, -22.0, 16.0, 33.0})},
	{RegionAsia, inAny(box{-11.0, 55.0, 60.0, 150.0})},
}

// RegionForCoordinate classifies a coordinate. Inside the UK bounding box
// the UK rules apply with "England" as the fallback; outside it the
// continental rules apply with "International" as the fallback.
func RegionForCoordinate(c models.Coordinate) string {
	if ukBox.contains(c) {
		return firstMatch(ukRules, c, RegionEngland)
	}
	return firstMatch(internationalRules, c, RegionInternational)
}

func firstMatch(rules []regionRule, c models.Coordinate, fallback string) string {
	for _, r := range rules {
		if r.match(c) {
			return r.label
		}
	}
	return fallback
}
