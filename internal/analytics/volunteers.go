// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"sort"

	"github.com/tomtom215/parkstats/internal/models"
)

// VolunteerStats groups volunteering occasions by role.
// Venues lists the distinct venues for each role in ascending order.
func VolunteerStats(records []models.VolunteerRecord) []models.VolunteerStats {
	if len(records) == 0 {
		return []models.VolunteerStats{}
	}

	counts := make(map[string]int)
	venues := make(map[string]map[string]struct{})

	for _, r := range records {
		counts[r.Role]++
		set, ok := venues[r.Role]
		if !ok {
			set = make(map[string]struct{})
			venues[r.Role] = set
		}
		set[r.Venue] = struct{}{}
	}

	total := float64(len(records))
	stats := make([]models.VolunteerStats, 0, len(counts))
	for role, count := range counts {
		names := make([]string, 0, len(venues[role]))
		for v := range venues[role] {
			names = append(names, v)
		}
		sort.Strings(names)

		stats = append(stats, models.VolunteerStats{
			Role:       role,
			Count:      count,
			Venues:     names,
			Percentage: float64(count) / total * 100,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Role < stats[j].Role
	})

	return stats
}
