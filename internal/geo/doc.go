// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package geo resolves venue names to coordinates and regions.

# Coordinate Registry

Registry is a lookup of known venue names to coordinates. Lookups try an
exact name match first, then a fuzzy match: both the query and every table
key are lower-cased with any trailing "parkrun" suffix stripped, and the
first table entry (in table order) where one normalized string contains the
other wins. An unknown venue is not an error; callers treat it as "unknown
location".

	reg := geo.DefaultRegistry()
	c, ok := reg.Coordinate("Whiteley")   // same as "Whiteley parkrun"
	region, ok := reg.MapRegion(venues)   // map framing, see MapRegion

# Region Classifier

Classifier turns a venue name into a human-readable region. When the
registry knows the venue the coordinate is classified with ordered
bounding-box rules (UK regions inside the UK box, continental buckets
outside it). Otherwise the lower-cased name is matched against ordered
keyword rules. In both cases the first matching rule wins and "England" is
the fallback.

	cls := geo.NewClassifier(reg)
	cls.Region("Keswick parkrun")             // "Lake District"
	cls.Region("Some Unknown Village parkrun") // "England"

# Proximity

Registry.Nearby answers "which known venues lie within r km of here" using a
spatial hash grid and haversine distances.
*/
package geo
