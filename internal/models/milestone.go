// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package models

// MilestoneCategory identifies which cumulative counter a milestone tracks.
type MilestoneCategory string

const (
	MilestoneRunning      MilestoneCategory = "running"
	MilestoneVolunteering MilestoneCategory = "volunteering"
	MilestoneTourism      MilestoneCategory = "tourism"
)

// Milestone is an achievement tier unlocked at a cumulative threshold.
// Achievement is never stored; it is re-derived from counters on every call.
type Milestone struct {
	Key       string            `json:"key"`
	Name      string            `json:"name"`
	Category  MilestoneCategory `json:"category"`
	Threshold int               `json:"threshold"`
}
