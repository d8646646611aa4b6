// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import (
	"strings"

	"github.com/tomtom215/parkstats/internal/models"
)

// Locator resolves a venue name to a coordinate. *Registry implements it.
type Locator interface {
	Coordinate(name string) (models.Coordinate, bool)
}

// Classifier assigns region labels to venue names.
// It is safe for concurrent use.
type Classifier struct {
	locator  Locator
	keywords *keywordMatcher
}

// defaultKeywords is shared by every classifier; the automaton is read-only.
var defaultKeywords = newKeywordMatcher(keywordRules)

// NewClassifier returns a classifier that consults locator first and falls
// back to keyword rules. A nil locator classifies by keyword only.
func NewClassifier(locator Locator) *Classifier {
	return &Classifier{locator: locator, keywords: defaultKeywords}
}

// Region classifies a venue name. Names with a known coordinate are
// classified by coordinate, everything else by keyword with "England" as
// the fallback.
func (c *Classifier) Region(name string) string {
	if c.locator != nil {
		if coord, ok := c.locator.Coordinate(name); ok {
			return RegionForCoordinate(coord)
		}
	}
	return c.RegionForKeyword(name)
}

// RegionForKeyword classifies a name by keyword alone.
func (c *Classifier) RegionForKeyword(name string) string {
	if label, ok := c.keywords.match(strings.ToLower(name)); ok {
		return label
	}
	return RegionEngland
}

// Location resolves both the coordinate and region of a venue.
func (c *Classifier) Location(name string) models.VenueLocation {
	loc := models.VenueLocation{Name: name}
	if c.locator != nil {
		if coord, ok := c.locator.Coordinate(name); ok {
			loc.Coordinate = &coord
			loc.Region = RegionForCoordinate(coord)
			return loc
		}
	}
	loc.Region = c.RegionForKeyword(name)
	return loc
}
