package analysis

import (
	"time"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// Aggregator turns raw POS transactions into per-day, per-shift average
// order rates. It is a pure function over its inputs plus an injected clock.
type Aggregator struct {
	shifts []models.ShiftDefinition
	now    func() time.Time
}

// NewAggregator builds an Aggregator for the given shift catalog. A nil clock
// defaults to time.Now.
func NewAggregator(shifts []models.ShiftDefinition, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{shifts: shifts, now: now}
}

// Aggregate filters transactions to the trailing window and buckets them by
// weekday name and the shift containing their hour. Each bucket's estimate is
// count / shift hours. Transactions outside every shift window are dropped,
// and buckets with no traffic are absent from the result.
func (a *Aggregator) Aggregate(transactions []models.Transaction, windowDays int) models.DemandEstimate {
	cutoff := a.now().AddDate(0, 0, -windowDays)

	counts := make(map[string]map[string]int)
	for _, tx := range transactions {
		if tx.Timestamp.Before(cutoff) {
			continue
		}
		shift, ok := a.shiftFor(tx.Timestamp.Hour())
		if !ok {
			continue
		}
		day := tx.Timestamp.Weekday().String()
		if counts[day] == nil {
			counts[day] = make(map[string]int)
		}
		counts[day][shift.Name]++
	}

	estimate := make(models.DemandEstimate, len(counts))
	for day, byShift := range counts {
		estimate[day] = make(map[string]float64, len(byShift))
		for _, shift := range a.shifts {
			if n, ok := byShift[shift.Name]; ok {
				estimate[day][shift.Name] = float64(n) / shift.Hours
			}
		}
	}
	return estimate
}

func (a *Aggregator) shiftFor(hour int) (models.ShiftDefinition, bool) {
	for _, s := range a.shifts {
		if s.ContainsHour(hour) {
			return s, true
		}
	}
	return models.ShiftDefinition{}, false
}
