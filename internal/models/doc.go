// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package models defines the data structures shared by the analytics engine and
the HTTP API.

# Record Types

The engine consumes two record collections supplied by an external producer:

  - RunRecord: one finish at a venue (date, elapsed time, optional position,
    age grading, run number and personal-best flag)
  - VolunteerRecord: one volunteering occasion (role, venue, date)

Dates are kept in their source text form (DD/MM/YYYY) and elapsed times as
MM:SS text. Parsing happens in the analytics package, which treats malformed
values as defined fallbacks rather than errors.

# Derived Types

Everything else in this package is derived on demand and carries no identity
beyond its content:

  - VenueStats, VolunteerStats, GeographicStats: ranked groupings
  - AnnualPerformance, OverallStats, PerformancePoint, PersonalBest: performance trends
  - ActivityDay: one entry per calendar day of a requested year
  - Milestone: achievement tiers unlocked by cumulative counters

# API Envelope

APIResponse, Metadata and APIError form the JSON envelope returned by every
HTTP endpoint.
*/
package models
