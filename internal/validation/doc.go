// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

// Package validation provides struct validation using go-playground/validator v10.
//
// The HTTP API validates every decoded request body before handing records to
// the engine. Only structural problems are rejected: a missing venue or role,
// an out-of-range position or age grading, a malformed result URL. Record
// dates and times are scraped text and are never validated here; the engine
// parses them leniently and a bad value only degrades that one record.
//
// # Field Paths
//
// Errors report JSON field paths rather than Go field names:
//
//	runs[2].venue is required
//
// # Usage
//
//	var req models.RecordsRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Code == "VALIDATION_ERROR"
//	}
//
// The validator is a process-wide singleton created on first use; struct
// metadata is cached by the underlying library, so repeated validation of the
// same request type is cheap.
package validation
