// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/parkstats/internal/logging"
)

// AnalyticsVenues handles venue ranking requests
//
// @Summary Venue statistics
// @Description Ranks venues by run count with best time, share of runs, most recent visit and coordinate. Results are memoized by record fingerprint.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body models.RecordsRequest true "Run records"
// @Success 200 {object} models.APIResponse{data=[]models.VenueStats}
// @Failure 400 {object} models.APIResponse "Invalid JSON or record"
// @Router /analytics/venues [post]
func (h *Handler) AnalyticsVenues(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}

	stats, cached := h.engine.VenueStatsCached(req.Runs)
	logging.Ctx(r.Context()).Debug().
		Int("runs", len(req.Runs)).
		Int("venues", len(stats)).
		Bool("cached", cached).
		Msg("Venue statistics served")

	respondSuccess(w, stats, start, cached)
}

// AnalyticsVolunteering handles volunteer role breakdown requests
//
// @Summary Volunteer statistics
// @Description Counts volunteering occasions per role with the venues each role was performed at.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body models.RecordsRequest true "Volunteer records"
// @Success 200 {object} models.APIResponse{data=[]models.VolunteerStats}
// @Router /analytics/volunteering [post]
func (h *Handler) AnalyticsVolunteering(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}

	respondSuccess(w, h.engine.VolunteerStats(req.Volunteers), start, false)
}

// AnalyticsGeographic handles regional distribution requests
//
// @Summary Geographic statistics
// @Description Groups visited venues into named regions with venue and run totals.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body models.RecordsRequest true "Run records"
// @Success 200 {object} models.APIResponse{data=[]models.GeographicStats}
// @Router /analytics/geographic [post]
func (h *Handler) AnalyticsGeographic(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}

	respondSuccess(w, h.engine.GeographicStats(req.Runs), start, false)
}

// AnalyticsCalendar handles activity calendar requests
//
// @Summary Activity calendar
// @Description One entry per day of the year marking the days with a run. Without ?year the latest year with a run is used.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param year query int false "Calendar year"
// @Param body body models.RecordsRequest true "Run records"
// @Success 200 {object} models.APIResponse{data=[]models.ActivityDay}
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Router /analytics/calendar [post]
func (h *Handler) AnalyticsCalendar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, apiErr := getYearParam(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}
	if year == 0 {
		year = h.engine.DefaultYear(req.Runs)
	}

	days, cached := h.engine.ActivityDaysCached(req.Runs, year)
	respondSuccess(w, days, start, cached)
}

// AnalyticsPerformance handles performance trend requests
//
// @Summary Performance report
// @Description Chronological time series, per-year bests, overall aggregates and personal best progression.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body models.RecordsRequest true "Run records"
// @Success 200 {object} models.APIResponse{data=models.PerformanceReport}
// @Router /analytics/performance [post]
func (h *Handler) AnalyticsPerformance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}

	respondSuccess(w, h.engine.Performance(req.Runs), start, false)
}

// AnalyticsMilestones handles milestone achievement requests
//
// @Summary Achieved milestones
// @Description Running, volunteering and venue tourism milestones reached by the posted records.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body models.RecordsRequest true "Run and volunteer records"
// @Success 200 {object} models.APIResponse{data=[]models.Milestone}
// @Router /analytics/milestones [post]
func (h *Handler) AnalyticsMilestones(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}

	respondSuccess(w, h.engine.Milestones(req.Runs, req.Volunteers), start, false)
}

// AnalyticsSummary handles full profile summary requests
//
// @Summary Profile summary
// @Description Every statistic for one set of records in a single response.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param year query int false "Calendar year"
// @Param body body models.RecordsRequest true "Run and volunteer records"
// @Success 200 {object} models.APIResponse{data=models.ProfileSummary}
// @Failure 400 {object} models.APIResponse "Invalid year or record"
// @Router /analytics/summary [post]
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, apiErr := getYearParam(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	req, ok := h.readRecords(w, r)
	if !ok {
		return
	}

	summary := h.engine.Summary(req.Runs, req.Volunteers, year)
	logging.Ctx(r.Context()).Debug().
		Int("runs", len(req.Runs)).
		Int("volunteers", len(req.Volunteers)).
		Int("year", summary.Year).
		Msg("Profile summary served")

	respondSuccess(w, summary, start, false)
}
