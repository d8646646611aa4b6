// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package geo

import (
	"math"
	"sort"

	"github.com/tomtom215/parkstats/internal/models"
)

const (
	// earthRadiusKm is the mean Earth radius used for haversine distances.
	earthRadiusKm = 6371.0

	// kmPerDegree is the approximate length of one degree of latitude.
	kmPerDegree = 111.0

	// defaultCellSizeKm is the grid cell edge used by the registry.
	defaultCellSizeKm = 25.0
)

// cellKey identifies one grid cell.
type cellKey struct {
	latCell int
	lonCell int
}

// spatialGrid is a spatial hash grid over venue coordinates.
// Points are bucketed into fixed-size cells so that a radius query only
// inspects the cells that can intersect the search circle.
//
// spatialGrid is not safe for concurrent use; Registry guards it.
type spatialGrid struct {
	cellSize float64 // degrees
	cells    map[cellKey]map[string]models.Coordinate
	points   map[string]cellKey
}

func newSpatialGrid(cellSizeKm float64) *spatialGrid {
	if cellSizeKm <= 0 {
		cellSizeKm = defaultCellSizeKm
	}
	return &spatialGrid{
		cellSize: cellSizeKm / kmPerDegree,
		cells:    make(map[cellKey]map[string]models.Coordinate),
		points:   make(map[string]cellKey),
	}
}

func (g *spatialGrid) keyFor(c models.Coordinate) cellKey {
	return cellKey{
		latCell: int(math.Floor(c.Lat / g.cellSize)),
		lonCell: int(math.Floor(c.Lon / g.cellSize)),
	}
}

// insert adds or moves a named point.
func (g *spatialGrid) insert(name string, c models.Coordinate) {
	g.remove(name)

	key := g.keyFor(c)
	cell, ok := g.cells[key]
	if !ok {
		cell = make(map[string]models.Coordinate)
		g.cells[key] = cell
	}
	cell[name] = c
	g.points[name] = key
}

func (g *spatialGrid) remove(name string) {
	key, ok := g.points[name]
	if !ok {
		return
	}
	delete(g.cells[key], name)
	if len(g.cells[key]) == 0 {
		delete(g.cells, key)
	}
	delete(g.points, name)
}

// queryNearby returns every point within radiusKm of center, nearest first.
// Ties on distance are broken by name. Queries do not wrap the antimeridian.
func (g *spatialGrid) queryNearby(center models.Coordinate, radiusKm float64) []models.NearbyVenue {
	if radiusKm < 0 {
		return nil
	}

	centerKey := g.keyFor(center)

	// A degree of longitude shrinks with latitude, so widen the longitude
	// scan accordingly. Near the poles fall back to scanning every column.
	radiusDeg := radiusKm / kmPerDegree
	latCells := int(math.Ceil(radiusDeg/g.cellSize)) + 1
	var lonCells int
	if cosLat := math.Cos(center.Lat * math.Pi / 180); cosLat > 0.01 {
		lonCells = int(math.Ceil(radiusDeg/cosLat/g.cellSize)) + 1
	} else {
		lonCells = int(math.Ceil(360/g.cellSize)) + 1
	}

	var results []models.NearbyVenue
	for dLat := -latCells; dLat <= latCells; dLat++ {
		for dLon := -lonCells; dLon <= lonCells; dLon++ {
			key := cellKey{latCell: centerKey.latCell + dLat, lonCell: centerKey.lonCell + dLon}
			for name, c := range g.cells[key] {
				d := Haversine(center, c)
				if d <= radiusKm {
					results = append(results, models.NearbyVenue{Name: name, Coordinate: c, DistanceKm: d})
				}
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Name < results[j].Name
	})
	return results
}

// Haversine returns the great-circle distance between two coordinates in km.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
