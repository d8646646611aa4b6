// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/parkstats/internal/middleware"
	"github.com/tomtom215/parkstats/internal/models"
)

// Version is the reported build version, overridden with -ldflags.
var Version = "dev"

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status         string      `json:"status"`
	Version        string      `json:"version"`
	Uptime         float64     `json:"uptime_seconds"`
	RegistryVenues int         `json:"registry_venues"`
	Timezone       string      `json:"timezone"`
	Cache          CacheHealth `json:"cache"`
}

// CacheHealth summarizes memoization cache efficiency.
type CacheHealth struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Expired int64   `json:"expired"`
	HitRate float64 `json:"hit_rate"`
}

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns uptime, registry size and cache efficiency
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.engine.CacheStats()
	cacheHealth := CacheHealth{Hits: stats.Hits, Misses: stats.Misses, Expired: stats.Expired}
	if total := stats.Hits + stats.Misses; total > 0 {
		cacheHealth.HitRate = float64(stats.Hits) / float64(total) * 100
	}

	status := "healthy"
	venues := h.engine.Registry().Len()
	if venues == 0 {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: HealthStatus{
			Status:         status,
			Version:        Version,
			Uptime:         time.Since(h.startTime).Seconds(),
			RegistryVenues: venues,
			Timezone:       h.engine.Location().String(),
			Cache:          cacheHealth,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive
//
// @Summary Kubernetes liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once the coordinate registry is populated
//
// @Summary Kubernetes readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine.Registry().Len() == 0 {
		respondError(w, http.StatusServiceUnavailable, CodeNotReady, "Coordinate registry is empty", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]interface{}{"ready": true},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthPerformance reports request latency percentiles from the in-process monitor
//
// @Summary Request latency percentiles
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]middleware.EndpointStats}
// @Router /health/performance [get]
func (h *Handler) HealthPerformance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.Stats()
	}
	respondSuccess(w, stats, start, false)
}
