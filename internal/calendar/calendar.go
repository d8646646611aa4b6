// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

// Package calendar expands sparse, date-stamped run records into a dense
// day-by-day activity grid for a single year.
package calendar

import (
	"time"

	"github.com/tomtom215/parkstats/internal/analytics"
	"github.com/tomtom215/parkstats/internal/models"
)

const dayKeyLayout = "2006-01-02"

// ActivityDays returns one entry per day from 1 January to 31 December of
// year, in loc (UTC when nil). The result always holds 365 or 366 entries.
//
// A day with at least one run is marked attended and carries the venue and
// time of the first such run in input order. Runs with unparsable dates are
// skipped.
func ActivityDays(records []models.RunRecord, year int, loc *time.Location) []models.ActivityDay {
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string]*models.RunRecord)
	for i := range records {
		date, ok := analytics.ParseDateIn(records[i].Date, loc)
		if !ok || date.Year() != year {
			continue
		}
		key := date.Format(dayKeyLayout)
		if _, exists := byDay[key]; !exists {
			byDay[key] = &records[i]
		}
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	days := make([]models.ActivityDay, 0, DaysInYear(year))

	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		day := models.ActivityDay{Date: d}
		if r, ok := byDay[d.Format(dayKeyLayout)]; ok {
			day.Attended = true
			day.Venue = r.Venue
			day.Time = r.Time
		}
		days = append(days, day)
	}

	return days
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// AttendedCount returns the number of attended days.
func AttendedCount(days []models.ActivityDay) int {
	n := 0
	for _, d := range days {
		if d.Attended {
			n++
		}
	}
	return n
}

// LongestWeeklyStreak returns the longest run of consecutive Monday-based
// weeks that each contain at least one attended day.
func LongestWeeklyStreak(days []models.ActivityDay) int {
	var (
		longest, current int
		lastWeek         time.Time
	)

	for _, d := range days {
		if !d.Attended {
			continue
		}
		week := weekStart(d.Date)
		switch {
		case current > 0 && week.Equal(lastWeek):
			continue
		case current > 0 && week.Equal(lastWeek.AddDate(0, 0, 7)):
			current++
		default:
			current = 1
		}
		lastWeek = week
		if current > longest {
			longest = current
		}
	}

	return longest
}

func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
