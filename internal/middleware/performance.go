// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/parkstats/internal/logging"
)

// DefaultSlowThreshold is the latency above which a request is logged as slow.
const DefaultSlowThreshold = time.Second

// RequestSample is one observed request.
type RequestSample struct {
	Endpoint   string    `json:"endpoint"`
	Method     string    `json:"method"`
	DurationMS int64     `json:"duration_ms"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}

// EndpointStats contains latency percentiles for one method and route.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int     `json:"request_count"`
	AvgMS        float64 `json:"avg_ms"`
	P50MS        int64   `json:"p50_ms"`
	P95MS        int64   `json:"p95_ms"`
	P99MS        int64   `json:"p99_ms"`
	MinMS        int64   `json:"min_ms"`
	MaxMS        int64   `json:"max_ms"`
}

// PerformanceMonitor keeps a sliding window of recent request latencies so
// the health endpoint can report percentiles without querying Prometheus.
type PerformanceMonitor struct {
	mu            sync.RWMutex
	samples       []RequestSample
	next          int
	full          bool
	slowThreshold time.Duration
}

// NewPerformanceMonitor creates a monitor holding the last window samples.
// A non-positive window is treated as 1.
func NewPerformanceMonitor(window int, slowThreshold time.Duration) *PerformanceMonitor {
	if window < 1 {
		window = 1
	}
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowThreshold
	}
	return &PerformanceMonitor{
		samples:       make([]RequestSample, window),
		slowThreshold: slowThreshold,
	}
}

// Record adds a sample, overwriting the oldest once the window is full.
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.samples[pm.next] = s
	pm.next++
	if pm.next == len(pm.samples) {
		pm.next = 0
		pm.full = true
	}
}

// window returns the retained samples oldest first. Caller holds pm.mu.
func (pm *PerformanceMonitor) window() []RequestSample {
	if !pm.full {
		out := make([]RequestSample, pm.next)
		copy(out, pm.samples[:pm.next])
		return out
	}
	out := make([]RequestSample, 0, len(pm.samples))
	out = append(out, pm.samples[pm.next:]...)
	return append(out, pm.samples[:pm.next]...)
}

// Stats aggregates the window per "METHOD pattern", busiest endpoint first.
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	pm.mu.RLock()
	samples := pm.window()
	pm.mu.RUnlock()

	grouped := make(map[string][]int64)
	for _, s := range samples {
		key := s.Method + " " + s.Endpoint
		grouped[key] = append(grouped[key], s.DurationMS)
	}

	stats := make([]EndpointStats, 0, len(grouped))
	for endpoint, durations := range grouped {
		sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

		var sum int64
		for _, d := range durations {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: len(durations),
			AvgMS:        float64(sum) / float64(len(durations)),
			P50MS:        percentile(durations, 0.50),
			P95MS:        percentile(durations, 0.95),
			P99MS:        percentile(durations, 0.99),
			MinMS:        durations[0],
			MaxMS:        durations[len(durations)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})
	return stats
}

// Recent returns up to n of the most recent samples, newest last.
func (pm *PerformanceMonitor) Recent(n int) []RequestSample {
	pm.mu.RLock()
	samples := pm.window()
	pm.mu.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(samples) {
		n = len(samples)
	}
	return samples[len(samples)-n:]
}

// Middleware records every request passing through it and warns on slow ones.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		elapsed := time.Since(start)
		endpoint := RoutePattern(r)
		pm.Record(RequestSample{
			Endpoint:   endpoint,
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  start,
		})

		if elapsed > pm.slowThreshold {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("endpoint", endpoint).
				Dur("duration", elapsed).
				Msg("Slow request detected")
		}
	})
}

// percentile returns the nearest-rank value from a sorted slice
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}
