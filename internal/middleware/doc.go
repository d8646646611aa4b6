// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package middleware provides HTTP middleware components for the API server.

All middleware uses the func(http.Handler) http.Handler shape so it plugs
directly into chi's r.Use.

Key Components:

  - RequestID: request and correlation IDs for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge per route
  - PerformanceMonitor: sliding window of request latencies with percentiles

Endpoint labels come from the matched chi route pattern, so
/api/v1/venues/Bushy and /api/v1/venues/Whiteley share one series
(/api/v1/venues/{name}).

Usage:

	perf := middleware.NewPerformanceMonitor(1000, time.Second)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perf.Middleware)

Thread Safety:

PerformanceMonitor is safe for concurrent use. The other middleware is
stateless apart from the Prometheus collectors.
*/
package middleware
