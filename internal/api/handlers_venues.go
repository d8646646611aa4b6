// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/parkstats/internal/logging"
	"github.com/tomtom215/parkstats/internal/models"
)

// maxNearbyRadiusKm bounds ?radius_km on the nearby endpoint.
const maxNearbyRadiusKm = 500

// nearbyResponse is the payload of the nearby endpoint.
type nearbyResponse struct {
	Venue    string               `json:"venue"`
	RadiusKm float64              `json:"radius_km"`
	Nearby   []models.NearbyVenue `json:"nearby"`
}

// VenueMapRegion handles map framing requests
//
// @Summary Map region for venues
// @Description Padded bounding region around the known coordinates of the listed venues. Falls back to the default region when none are known.
// @Tags Venues
// @Accept json
// @Produce json
// @Param body body models.MapRegionRequest true "Venue names"
// @Success 200 {object} models.APIResponse{data=models.MapRegion}
// @Router /venues/map-region [post]
func (h *Handler) VenueMapRegion(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.MapRegionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	respondSuccess(w, h.engine.MapRegion(req.Venues), start, false)
}

// VenueGet handles single venue lookups
//
// @Summary Locate a venue
// @Description Coordinate (when known) and region label for a venue name. Unknown venues still receive a region from keyword rules.
// @Tags Venues
// @Produce json
// @Param name path string true "Venue name"
// @Success 200 {object} models.APIResponse{data=models.VenueLocation}
// @Router /venues/{name} [get]
func (h *Handler) VenueGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name := venueParam(r)
	if name == "" {
		respondError(w, http.StatusBadRequest, CodeValidation, "venue name is required", nil)
		return
	}

	respondSuccess(w, h.engine.Locate(name), start, false)
}

// VenueNearby handles proximity queries
//
// @Summary Venues near a venue
// @Description Registry venues within radius_km of the named venue, nearest first.
// @Tags Venues
// @Produce json
// @Param name path string true "Venue name"
// @Param radius_km query number false "Search radius in kilometres"
// @Success 200 {object} models.APIResponse{data=nearbyResponse}
// @Failure 400 {object} models.APIResponse "Invalid radius"
// @Failure 404 {object} models.APIResponse "Venue has no known coordinate"
// @Router /venues/{name}/nearby [get]
func (h *Handler) VenueNearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name := venueParam(r)
	if name == "" {
		respondError(w, http.StatusBadRequest, CodeValidation, "venue name is required", nil)
		return
	}

	radius, ok := getFloatParam(r, "radius_km", h.nearbyRadiusKm())
	if !ok || radius <= 0 || radius > maxNearbyRadiusKm {
		respondAPIError(w, http.StatusBadRequest, &models.APIError{
			Code:    CodeValidation,
			Message: fmt.Sprintf("radius_km must be a number in (0, %d]", maxNearbyRadiusKm),
			Details: map[string]interface{}{"field": "radius_km"},
		})
		return
	}

	nearby, found := h.engine.Nearby(name, radius)
	if !found {
		respondAPIError(w, http.StatusNotFound, &models.APIError{
			Code:    CodeNotFound,
			Message: fmt.Sprintf("no coordinate known for venue %q", name),
			Details: map[string]interface{}{"venue": name},
		})
		return
	}

	respondSuccess(w, nearbyResponse{Venue: name, RadiusKm: radius, Nearby: nearby}, start, false)
}

// CacheClear handles cache invalidation requests
//
// @Summary Clear the analytics cache
// @Description Drops every memoized venue statistic and activity calendar.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /cache [delete]
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	h.engine.ClearCache()
	logging.Ctx(r.Context()).Info().Msg("Analytics cache cleared via API")

	respondSuccess(w, map[string]interface{}{"cleared": true}, start, false)
}
