// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

// Package milestones evaluates cumulative counters against fixed achievement
// thresholds. Nothing is stored: every call re-derives the result.
package milestones

import (
	"fmt"

	"github.com/tomtom215/parkstats/internal/models"
)

// Thresholds per category, ascending.
var (
	RunningThresholds      = []int{25, 50, 100, 250, 500, 1000}
	VolunteeringThresholds = []int{25, 50, 100, 250, 500}
	TourismThresholds      = []int{10, 20, 50, 100}
)

// All is the full milestone table: running, then volunteering, then tourism,
// each in ascending threshold order.
var All = buildTable()

func buildTable() []models.Milestone {
	table := make([]models.Milestone, 0, len(RunningThresholds)+len(VolunteeringThresholds)+len(TourismThresholds))
	for _, n := range RunningThresholds {
		table = append(table, newMilestone(models.MilestoneRunning, n, fmt.Sprintf("%d Runs", n)))
	}
	for _, n := range VolunteeringThresholds {
		table = append(table, newMilestone(models.MilestoneVolunteering, n, fmt.Sprintf("%d Volunteering Occasions", n)))
	}
	for _, n := range TourismThresholds {
		table = append(table, newMilestone(models.MilestoneTourism, n, fmt.Sprintf("%d Different Venues", n)))
	}
	return table
}

func newMilestone(category models.MilestoneCategory, threshold int, name string) models.Milestone {
	return models.Milestone{
		Key:       fmt.Sprintf("%s_%d", category, threshold),
		Name:      name,
		Category:  category,
		Threshold: threshold,
	}
}

// Check returns every milestone whose threshold is met or exceeded, not
// just the highest per category. 120 runs yields both the 25 and the 100
// run milestones.
func Check(totalRuns, volunteerCount, venueCount int) []models.Milestone {
	achieved := make([]models.Milestone, 0)
	for _, m := range All {
		if counterFor(m.Category, totalRuns, volunteerCount, venueCount) >= m.Threshold {
			achieved = append(achieved, m)
		}
	}
	return achieved
}

// Next returns the lowest unmet milestone in category for count, or false
// when every milestone in the category is achieved or the category is
// unknown.
func Next(category models.MilestoneCategory, count int) (models.Milestone, bool) {
	for _, m := range All {
		if m.Category == category && count < m.Threshold {
			return m, true
		}
	}
	return models.Milestone{}, false
}

func counterFor(category models.MilestoneCategory, runs, volunteers, venues int) int {
	switch category {
	case models.MilestoneRunning:
		return runs
	case models.MilestoneVolunteering:
		return volunteers
	case models.MilestoneTourism:
		return venues
	default:
		return 0
	}
}
