package scheduler

import (
	"math"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// FairnessScore returns a percentage (0-100) describing how evenly assigned
// hours are spread across the employee pool. 100 means a standard deviation
// of zero; 0 means the deviation is at least as large as the mean.
func FairnessScore(roster models.Roster, employees []models.Employee, shifts []models.ShiftDefinition) float64 {
	if len(employees) == 0 {
		return 100.0
	}

	durations := make(map[string]float64, len(shifts))
	for _, s := range shifts {
		durations[s.Name] = s.Hours
	}

	hours := make(map[string]float64, len(employees))
	for _, emp := range employees {
		hours[emp.Name] = 0
	}
	for _, entry := range roster {
		for _, name := range entry.Employees {
			hours[name] += durations[entry.Shift]
		}
	}

	var sum float64
	for _, h := range hours {
		sum += h
	}
	if sum == 0 {
		return 100.0
	}
	mean := sum / float64(len(employees))

	var varianceSum float64
	for _, h := range hours {
		diff := h - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(employees)))

	score := (1.0 - stdDev/mean) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
