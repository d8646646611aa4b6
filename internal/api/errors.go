// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

// errors.go - Common API error definitions
//
// This file contains the error codes carried in the APIResponse envelope and
// sentinel errors for request decoding.

package api

import "errors"

// Error codes returned in models.APIError.Code
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeNotFound         = "NOT_FOUND"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeNotReady         = "NOT_READY"
	CodeRateLimited      = "RATE_LIMITED"
)

// Common API errors
var (
	// ErrBodyTooLarge indicates the request body exceeded maxBodyBytes
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrTooManyRecords indicates a collection exceeded the configured record cap
	ErrTooManyRecords = errors.New("too many records")

	// ErrTrailingData indicates extra content after the JSON document
	ErrTrailingData = errors.New("unexpected data after JSON body")
)
