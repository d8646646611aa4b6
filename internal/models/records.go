// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package models

// DateLayout is the fixed day/month/year text form used by record dates.
const DateLayout = "02/01/2006"

// RunRecord represents a single finish at a venue.
//
// Date uses DateLayout and Time is MM:SS (H:MM:SS for results over an hour).
// Both are kept as text because the upstream producer scrapes them and they
// may be malformed. They carry no validation tags: a bad date or time
// degrades that record's contribution in the analytics package instead of
// rejecting the whole collection.
type RunRecord struct {
	Venue        string   `json:"venue" validate:"required"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	ResultURL    *string  `json:"result_url,omitempty" validate:"omitempty,url"`
	RunNumber    *int     `json:"run_number,omitempty" validate:"omitempty,min=1"`
	Position     *int     `json:"position,omitempty" validate:"omitempty,min=1"`
	AgeGrading   *float64 `json:"age_grading,omitempty" validate:"omitempty,min=0,max=100"`
	PersonalBest *bool    `json:"personal_best,omitempty"`
}

// VolunteerRecord represents one volunteering occasion.
type VolunteerRecord struct {
	Role  string `json:"role" validate:"required"`
	Venue string `json:"venue" validate:"required"`
	Date  string `json:"date"`
}
