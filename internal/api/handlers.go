// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/parkstats/internal/config"
	"github.com/tomtom215/parkstats/internal/engine"
	"github.com/tomtom215/parkstats/internal/logging"
	"github.com/tomtom215/parkstats/internal/middleware"
	"github.com/tomtom215/parkstats/internal/models"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, request decoding (this file)
//   - handlers_helpers.go: Shared response and parameter helpers
//   - handlers_health.go: Health/monitoring endpoints
//   - handlers_analytics.go: Analytics endpoints over posted records
//   - handlers_venues.go: Venue lookup, proximity and map framing endpoints
type Handler struct {
	engine    *engine.Engine
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// The handler owns no records: every analytics request carries its own
// collections and the engine memoizes results by content fingerprint.
//
// Example:
//
//	eng, _ := engine.NewEngine(engineCfg, logging.Logger())
//	perf := middleware.NewPerformanceMonitor(1000, time.Second)
//	handler := api.NewHandler(eng, cfg, perf)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security), perf)
//	http.ListenAndServe(":8857", router.SetupChi())
func NewHandler(eng *engine.Engine, cfg *config.Config, perfMon *middleware.PerformanceMonitor) *Handler {
	return &Handler{
		engine:    eng,
		config:    cfg,
		perfMon:   perfMon,
		startTime: time.Now(),
	}
}

// maxRecords returns the configured per-collection cap.
func (h *Handler) maxRecords() int {
	if h.config == nil || h.config.Analytics.MaxRecords < 1 {
		return 10000
	}
	return h.config.Analytics.MaxRecords
}

// nearbyRadiusKm returns the configured default proximity radius.
func (h *Handler) nearbyRadiusKm() float64 {
	if h.config == nil || h.config.Analytics.NearbyRadiusKm <= 0 {
		return 25
	}
	return h.config.Analytics.NearbyRadiusKm
}

// readRecords decodes and validates a RecordsRequest. On failure it writes
// the error response and returns false.
func (h *Handler) readRecords(w http.ResponseWriter, r *http.Request) (*models.RecordsRequest, bool) {
	var req models.RecordsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return nil, false
	}

	limit := h.maxRecords()
	if len(req.Runs) > limit || len(req.Volunteers) > limit {
		err := fmt.Errorf("%w: %d runs, %d volunteer records, limit %d",
			ErrTooManyRecords, len(req.Runs), len(req.Volunteers), limit)
		respondAPIError(w, http.StatusRequestEntityTooLarge, &models.APIError{
			Code:    CodePayloadTooLarge,
			Message: err.Error(),
			Details: map[string]interface{}{"limit": limit},
		})
		return nil, false
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		logging.Ctx(r.Context()).Debug().
			Str("path", r.URL.Path).
			Str("error", sanitizeLogValue(apiErr.Message)).
			Msg("Rejected records request")
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return nil, false
	}

	return &req, true
}
