// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

/*
Package analytics provides the pure aggregation functions that turn run and
volunteer records into ranked statistics and performance series.

Every function is total: any input, including empty collections and records
with malformed dates or times, produces a result. Malformed elapsed times
count as zero minutes and are left out of best/average reductions.
Unparsable dates sort as the earliest possible date and are left out of
anything keyed by date; each one is reported at debug level and counted in
the parkstats_unparsable_dates_total metric.

Ordering is deterministic:

  - VenueStats: run count descending, then venue name ascending
  - VolunteerStats: count descending, then role ascending
  - GeographicStats: venue count descending, total runs descending, region ascending
  - Performance series: date ascending, input order for equal dates
*/
package analytics
