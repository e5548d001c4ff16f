package scheduler

import "github.com/alexgaoth/boba-bi/pkg/models"

// Available returns the employees eligible to work the given day and shift,
// each annotated with a preference score. weekday_only staff are excluded on
// weekends and weekend_only staff on weekdays. Output preserves input order;
// callers re-sort as needed.
func Available(employees []models.Employee, day, shift string) []models.Candidate {
	isWeekend := models.IsWeekendDay(day)

	candidates := make([]models.Candidate, 0, len(employees))
	for _, emp := range employees {
		if emp.Availability == models.AvailabilityWeekdayOnly && isWeekend {
			continue
		}
		if emp.Availability == models.AvailabilityWeekendOnly && !isWeekend {
			continue
		}

		score := 0
		switch emp.ShiftPreference {
		case shift:
			score = 2
		case models.NoPreference:
			score = 1
		}
		candidates = append(candidates, models.Candidate{Employee: emp, PreferenceScore: score})
	}
	return candidates
}
