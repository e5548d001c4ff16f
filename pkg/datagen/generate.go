package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// Hourly traffic baselines (orders per hour) for the two 8-hour shifts.
var trafficPatterns = map[string]map[string][]int{
	"weekday": {
		models.PreferMorning: {5, 8, 12, 15, 20, 18, 14, 10},
		models.PreferEvening: {25, 30, 35, 28, 20, 15, 10, 8},
	},
	"weekend": {
		models.PreferMorning: {15, 20, 25, 30, 35, 32, 28, 22},
		models.PreferEvening: {40, 45, 42, 38, 30, 25, 18, 12},
	},
}

var (
	firstNames = []string{"Alex", "Jordan", "Taylor", "Morgan", "Casey",
		"Riley", "Quinn", "Avery", "Sage", "Dakota"}
	lastNames = []string{"Chen", "Patel", "Kim", "Martinez", "Johnson",
		"Lee", "Wong", "Garcia", "Singh", "Brown"}
)

// GenerateTransactions produces a synthetic POS history of the given number
// of weeks ending at now, following the shop's weekday/weekend traffic shape
// with ±30% noise.
func GenerateTransactions(weeks int, now time.Time, r *rand.Rand) []models.Transaction {
	var transactions []models.Transaction
	startDate := now.AddDate(0, 0, -7*weeks)

	orderID := 1
	for week := 0; week < weeks; week++ {
		for day := 0; day < 7; day++ {
			currentDate := startDate.AddDate(0, 0, week*7+day)
			kind := "weekday"
			if wd := currentDate.Weekday(); wd == time.Saturday || wd == time.Sunday {
				kind = "weekend"
			}

			for _, shift := range []struct {
				name      string
				startHour int
			}{
				{models.PreferMorning, 8},
				{models.PreferEvening, 16},
			} {
				pattern := trafficPatterns[kind][shift.name]
				for hour := 0; hour < len(pattern); hour++ {
					orders := int(float64(pattern[hour]) * (0.7 + r.Float64()*0.6))
					for i := 0; i < orders; i++ {
						ts := time.Date(currentDate.Year(), currentDate.Month(), currentDate.Day(),
							shift.startHour+hour, r.Intn(60), 0, 0, currentDate.Location())
						transactions = append(transactions, models.Transaction{
							OrderID:         orderID,
							Timestamp:       ts,
							Items:           1 + r.Intn(4),
							PrepTimeMinutes: 3 + r.Intn(6),
						})
						orderID++
					}
				}
			}
		}
	}
	return transactions
}

// GenerateEmployees produces up to len(firstNames) synthetic employees with
// random availability classes and shift preferences and a 40-hour weekly cap.
func GenerateEmployees(n int, r *rand.Rand) []models.Employee {
	if n > len(firstNames) {
		n = len(firstNames)
	}
	availabilities := []models.Availability{
		models.AvailabilityAll,
		models.AvailabilityWeekdayOnly,
		models.AvailabilityWeekendOnly,
	}
	preferences := []string{models.PreferMorning, models.PreferEvening, models.NoPreference}

	employees := make([]models.Employee, 0, n)
	for i := 0; i < n; i++ {
		employees = append(employees, models.Employee{
			ID:              i + 1,
			Name:            fmt.Sprintf("%s %s", firstNames[i], lastNames[i]),
			Availability:    availabilities[r.Intn(len(availabilities))],
			ShiftPreference: preferences[r.Intn(len(preferences))],
			MaxHoursPerWeek: 40,
		})
	}
	return employees
}
