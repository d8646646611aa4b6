// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"venue": "Bushy parkrun", "run_count": 12, ...}],
//	  "metadata": {
//	    "timestamp": "2026-03-14T09:30:00Z",
//	    "query_time_ms": 2,
//	    "cached": true
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "runs[0].date: must be a DD/MM/YYYY date",
//	    "details": {"field": "runs[0].date"}
//	  },
//	  "metadata": {"timestamp": "2026-03-14T09:30:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Cached reports whether the engine served the primary statistic from its
// memoization cache instead of recomputing it.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Fields:
//   - Code: Machine-readable error code (e.g., "VALIDATION_ERROR", "INVALID_JSON")
//   - Message: Human-readable error message
//   - Details: Additional context (field names, constraints, etc.)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecordsRequest is the request body accepted by the analytics endpoints.
// Either collection may be omitted; an empty collection is valid input.
type RecordsRequest struct {
	Runs       []RunRecord       `json:"runs" validate:"omitempty,dive"`
	Volunteers []VolunteerRecord `json:"volunteers" validate:"omitempty,dive"`
}

// MapRegionRequest is the request body for the map framing endpoint.
type MapRegionRequest struct {
	Venues []string `json:"venues" validate:"max=5000,dive,required"`
}
