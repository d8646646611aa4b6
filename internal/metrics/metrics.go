// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

// Package metrics exposes Prometheus instrumentation for the analytics engine
// and the HTTP API:
//   - Engine computation latency and input sizes
//   - Memoization cache efficiency
//   - API endpoint latency and throughput
//   - Registry size and reloads
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Engine Metrics
	ComputeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkstats_compute_duration_seconds",
			Help:    "Duration of analytics computations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	RecordsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkstats_records_processed_total",
			Help: "Total number of records fed into analytics computations",
		},
		[]string{"operation"},
	)

	UnparsableDates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkstats_unparsable_dates_total",
			Help: "Total number of record dates that could not be parsed",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkstats_cache_hits_total",
			Help: "Total number of memoization cache hits",
		},
		[]string{"operation"}, // "venue_stats", "activity_days"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkstats_cache_misses_total",
			Help: "Total number of memoization cache misses (absent or expired)",
		},
		[]string{"operation"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parkstats_cache_entries",
			Help: "Current number of memoization cache entries",
		},
	)

	CacheClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkstats_cache_clears_total",
			Help: "Total number of manual cache invalidations",
		},
	)

	// Registry Metrics
	RegistryVenues = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parkstats_registry_venues",
			Help: "Number of venues with a known coordinate",
		},
	)

	RegistryReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkstats_registry_reloads_total",
			Help: "Total number of registry override reloads",
		},
		[]string{"status"}, // "success", "error"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkstats_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkstats_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parkstats_api_active_requests",
			Help: "Current number of active API requests",
		},
	)
)

// RecordComputation records one engine computation over n records.
func RecordComputation(operation string, n int, duration time.Duration) {
	ComputeDuration.WithLabelValues(operation).Observe(duration.Seconds())
	RecordsProcessed.WithLabelValues(operation).Add(float64(n))
}

// RecordCacheLookup records a cache hit or miss for an operation.
func RecordCacheLookup(operation string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(operation).Inc()
		return
	}
	CacheMisses.WithLabelValues(operation).Inc()
}

// RecordRegistryReload records the outcome of a registry override reload.
func RecordRegistryReload(err error, venues int) {
	if err != nil {
		RegistryReloads.WithLabelValues("error").Inc()
		return
	}
	RegistryReloads.WithLabelValues("success").Inc()
	RegistryVenues.Set(float64(venues))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
