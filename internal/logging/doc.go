// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package logging provides centralized structured logging for Parkstats using zerolog.

A single global logger is configured once at startup and shared by every
package:

	logging.Init(logging.Config{
	    Level:  "info",
	    Format: "json",
	})

	logging.Info().Str("venue", name).Int("runs", n).Msg("Venue stats computed")
	logging.Error().Err(err).Msg("Failed to load configuration")

# Output Formats

  - json: one JSON object per line, for log aggregation
  - console: human-readable colored output for development

# Request Correlation

The request ID middleware stores a request ID and a correlation ID in the
request context. Ctx returns a logger carrying both:

	logging.Ctx(r.Context()).Warn().Msg("Rejected oversized payload")

# slog Bridge

SlogHandler adapts zerolog to log/slog so libraries that only speak slog,
such as sutureslog, write into the same stream.

# Testing

NewTestLogger writes to an arbitrary io.Writer so tests can assert on
emitted fields.
*/
package logging
