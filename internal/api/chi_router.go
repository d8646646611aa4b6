// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/parkstats/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates a router. A nil perfMon disables latency sampling.
func NewRouter(handler *Handler, chiMW *ChiMiddleware, perfMon *middleware.PerformanceMonitor) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		perfMon:       perfMon,
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)
	if router.perfMon != nil {
		r.Use(router.perfMon.Middleware)
	}
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/performance", router.handler.HealthPerformance)
	})

	// ========================
	// Analytics Endpoints
	// ========================
	// Stateless: each request posts the records to analyse.
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Post("/venues", router.handler.AnalyticsVenues)
		r.Post("/volunteering", router.handler.AnalyticsVolunteering)
		r.Post("/geographic", router.handler.AnalyticsGeographic)
		r.Post("/calendar", router.handler.AnalyticsCalendar)
		r.Post("/performance", router.handler.AnalyticsPerformance)
		r.Post("/milestones", router.handler.AnalyticsMilestones)
		r.Post("/summary", router.handler.AnalyticsSummary)
	})

	// ========================
	// Venue Endpoints
	// ========================
	r.Route("/api/v1/venues", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Post("/map-region", router.handler.VenueMapRegion)
		r.Get("/{name}", router.handler.VenueGet)
		r.Get("/{name}/nearby", router.handler.VenueNearby)
	})

	// ========================
	// Admin Endpoints
	// ========================
	r.Route("/api/v1/cache", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAdmin())
		r.Use(APISecurityHeaders())
		r.Delete("/", router.handler.CacheClear)
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
