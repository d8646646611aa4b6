// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package api provides the HTTP REST API layer for Parkstats.

The API is stateless: clients POST the run and volunteer records they hold and
receive statistics back. Nothing is persisted; repeated requests with the same
records are answered from the engine's memoization cache.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers over the analytics engine
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories
  - Response formatting: APIResponse envelope with timing metadata

API Categories:

1. Health Endpoints (/api/v1/health/):
  - health, health/live, health/ready, health/performance

2. Analytics Endpoints (/api/v1/analytics/, POST with {runs, volunteers}):
  - venues, volunteering, geographic, performance, milestones
  - calendar?year=YYYY, summary?year=YYYY

3. Venue Endpoints (/api/v1/venues/):
  - POST map-region with {venues: [...]}
  - GET {name}, GET {name}/nearby?radius_km=N

4. Admin Endpoints:
  - DELETE /api/v1/cache

5. Metrics:
  - GET /metrics (Prometheus exposition)

Error Handling:

Errors use the envelope with status "error" and one of the codes
VALIDATION_ERROR, INVALID_JSON, NOT_FOUND, PAYLOAD_TOO_LARGE,
METHOD_NOT_ALLOWED, RATE_LIMITED, NOT_READY. Record validation
reports the failing field path, for example runs[3].date.

Usage Example:

	eng, err := engine.NewEngine(&engine.Config{CacheTTL: cfg.Analytics.CacheTTL}, logging.Logger())
	if err != nil {
	    return err
	}
	perf := middleware.NewPerformanceMonitor(1000, time.Second)
	handler := api.NewHandler(eng, cfg, perf)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security), perf)
	http.ListenAndServe(":8857", router.SetupChi())

Thread Safety:

Handlers are safe for concurrent use; all shared state lives in the engine.
*/
package api
