// Parkstats - Running Statistics Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/parkstats

package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/parkstats/internal/models"
)

// PerformanceSeries returns the runs in chronological order for charting.
// Runs with an unparsable date or a malformed time are left out.
func PerformanceSeries(records []models.RunRecord) []models.PerformancePoint {
	points := make([]models.PerformancePoint, 0, len(records))

	for i := range records {
		r := &records[i]
		minutes := TimeInMinutes(r.Time)
		if minutes <= 0 {
			continue
		}
		date, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		points = append(points, models.PerformancePoint{
			Date:       date,
			Venue:      r.Venue,
			Time:       strings.TrimSpace(r.Time),
			Minutes:    minutes,
			AgeGrading: r.AgeGrading,
			Position:   r.Position,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// AnnualPerformance summarizes each calendar year, oldest first.
// TotalRuns counts every run with a parsable date, including runs whose time
// is malformed.
func AnnualPerformance(records []models.RunRecord) []models.AnnualPerformance {
	years := make(map[int]*models.AnnualPerformance)

	for i := range records {
		r := &records[i]
		date, ok := ParseDate(r.Date)
		if !ok {
			continue
		}

		y := date.Year()
		a, exists := years[y]
		if !exists {
			a = &models.AnnualPerformance{Year: y}
			years[y] = a
		}
		a.TotalRuns++

		if m := TimeInMinutes(r.Time); m > 0 && (a.BestTimeMinutes == 0 || m < a.BestTimeMinutes) {
			a.BestTimeMinutes = m
			a.BestTime = strings.TrimSpace(r.Time)
		}
		if r.AgeGrading != nil && *r.AgeGrading > a.BestAgeGrading {
			a.BestAgeGrading = *r.AgeGrading
		}
	}

	result := make([]models.AnnualPerformance, 0, len(years))
	for _, a := range years {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Year < result[j].Year
	})
	return result
}

// OverallStats computes a single summary over every run.
// Malformed times and absent age gradings or positions are skipped by the
// reductions they would otherwise distort.
func OverallStats(records []models.RunRecord) models.OverallStats {
	stats := models.OverallStats{TotalRuns: len(records)}

	var (
		fastest, slowest, timeSum float64
		timeCount                 int
		gradeSum                  float64
		gradeCount                int
		posSum                    int
		posCount                  int
	)

	for i := range records {
		r := &records[i]

		if m := TimeInMinutes(r.Time); m > 0 {
			if timeCount == 0 || m < fastest {
				fastest = m
				stats.FastestTime = strings.TrimSpace(r.Time)
			}
			if timeCount == 0 || m > slowest {
				slowest = m
				stats.SlowestTime = strings.TrimSpace(r.Time)
			}
			timeSum += m
			timeCount++
		}

		if r.AgeGrading != nil {
			g := *r.AgeGrading
			if gradeCount == 0 {
				stats.BestAgeGrading, stats.WorstAgeGrading = g, g
			}
			stats.BestAgeGrading = math.Max(stats.BestAgeGrading, g)
			stats.WorstAgeGrading = math.Min(stats.WorstAgeGrading, g)
			gradeSum += g
			gradeCount++
		}

		if r.Position != nil {
			p := *r.Position
			if posCount == 0 || p < stats.BestPosition {
				stats.BestPosition = p
			}
			if posCount == 0 || p > stats.WorstPosition {
				stats.WorstPosition = p
			}
			posSum += p
			posCount++
		}
	}

	if timeCount > 0 {
		stats.AverageTime = FormatMinutes(timeSum / float64(timeCount))
	}
	if gradeCount > 0 {
		stats.AverageAgeGrading = gradeSum / float64(gradeCount)
	}
	if posCount > 0 {
		stats.AveragePosition = float64(posSum) / float64(posCount)
	}

	return stats
}

// PersonalBestProgression returns, in date order, each run that was faster
// than every run before it.
func PersonalBestProgression(records []models.RunRecord) []models.PersonalBest {
	progression := make([]models.PersonalBest, 0)

	best := 0.0
	for _, p := range PerformanceSeries(records) {
		if best == 0 || p.Minutes < best {
			best = p.Minutes
			progression = append(progression, models.PersonalBest{
				Date:    p.Date,
				Venue:   p.Venue,
				Time:    p.Time,
				Minutes: p.Minutes,
			})
		}
	}
	return progression
}

// YearsActive returns the distinct years with at least one run, newest first.
func YearsActive(records []models.RunRecord) []int {
	seen := make(map[int]struct{})
	for i := range records {
		if date, ok := ParseDate(records[i].Date); ok {
			seen[date.Year()] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
