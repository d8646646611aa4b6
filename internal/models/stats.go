// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package models

import "time"

// VenueStats summarizes every run at one venue.
//
// Percentage is the venue's share of all runs in the input set; across one
// input set the percentages sum to 100. BestTime is empty when none of the
// venue's times could be parsed.
type VenueStats struct {
	Venue           string      `json:"venue"`
	RunCount        int         `json:"run_count"`
	BestTime        string      `json:"best_time"`
	BestTimeMinutes float64     `json:"best_time_minutes"`
	Percentage      float64     `json:"percentage"`
	MostRecentDate  string      `json:"most_recent_date"`
	Coordinate      *Coordinate `json:"coordinate,omitempty"`
}

// VolunteerStats summarizes every volunteering occasion in one role.
type VolunteerStats struct {
	Role       string   `json:"role"`
	Count      int      `json:"count"`
	Venues     []string `json:"venues"`
	Percentage float64  `json:"percentage"`
}

// GeographicStats groups venues by classified region.
type GeographicStats struct {
	Region     string   `json:"region"`
	VenueCount int      `json:"venue_count"`
	TotalRuns  int      `json:"total_runs"`
	Venues     []string `json:"venues"`
}

// AnnualPerformance is the per-year performance summary.
type AnnualPerformance struct {
	Year            int     `json:"year"`
	BestTime        string  `json:"best_time"`
	BestTimeMinutes float64 `json:"best_time_minutes"`
	BestAgeGrading  float64 `json:"best_age_grading"`
	TotalRuns       int     `json:"total_runs"`
}

// OverallStats is a single summary snapshot over a run collection.
// Position "best" is the lowest finishing position.
type OverallStats struct {
	TotalRuns         int     `json:"total_runs"`
	FastestTime       string  `json:"fastest_time"`
	AverageTime       string  `json:"average_time"`
	SlowestTime       string  `json:"slowest_time"`
	BestAgeGrading    float64 `json:"best_age_grading"`
	AverageAgeGrading float64 `json:"average_age_grading"`
	WorstAgeGrading   float64 `json:"worst_age_grading"`
	BestPosition      int     `json:"best_position"`
	AveragePosition   float64 `json:"average_position"`
	WorstPosition     int     `json:"worst_position"`
}

// PerformancePoint is one entry of a chronological performance series.
type PerformancePoint struct {
	Date       time.Time `json:"date"`
	Venue      string    `json:"venue"`
	Time       string    `json:"time"`
	Minutes    float64   `json:"minutes"`
	AgeGrading *float64  `json:"age_grading,omitempty"`
	Position   *int      `json:"position,omitempty"`
}

// PersonalBest marks a run that improved on every earlier time.
type PersonalBest struct {
	Date    time.Time `json:"date"`
	Venue   string    `json:"venue"`
	Time    string    `json:"time"`
	Minutes float64   `json:"minutes"`
}

// ActivityDay is one day of a dense activity calendar.
type ActivityDay struct {
	Date     time.Time `json:"date"`
	Attended bool      `json:"attended"`
	Venue    string    `json:"venue,omitempty"`
	Time     string    `json:"time,omitempty"`
}

// PerformanceReport bundles the time-based performance views.
type PerformanceReport struct {
	Series      []PerformancePoint  `json:"series"`
	Annual      []AnnualPerformance `json:"annual"`
	Overall     OverallStats        `json:"overall"`
	Progression []PersonalBest      `json:"progression"`
}

// ProfileSummary bundles every statistic the engine derives for one profile.
type ProfileSummary struct {
	Venues       []VenueStats      `json:"venues"`
	Volunteering []VolunteerStats  `json:"volunteering"`
	Geographic   []GeographicStats `json:"geographic"`
	Performance  PerformanceReport `json:"performance"`
	Milestones   []Milestone       `json:"milestones"`
	Calendar     []ActivityDay     `json:"calendar"`
	Year         int               `json:"year"`
	MapRegion    MapRegion         `json:"map_region"`
}
