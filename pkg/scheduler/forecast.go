package scheduler

import "github.com/alexgaoth/boba-bi/pkg/models"

// Adjuster applies a per-date forecast multiplier to a baseline demand
// estimate. Missing demand buckets fall back to DefaultOrdersPerHour and
// missing forecast dates to DefaultMultiplier.
type Adjuster struct {
	DefaultOrdersPerHour float64
	DefaultMultiplier    float64
}

// Adjust returns base demand for (day, shift) scaled by the forecast
// multiplier for date. The result is deliberately unclamped: a large
// multiplier produces a correspondingly large predicted rate, and the
// assigner's headcount floor bounds supply only, not the requested headcount.
func (a Adjuster) Adjust(estimate models.DemandEstimate, day, shift, date string, signal models.ForecastSignal) float64 {
	base := a.DefaultOrdersPerHour
	if byShift, ok := estimate[day]; ok {
		if v, ok := byShift[shift]; ok {
			base = v
		}
	}
	return base * signal.Multiplier(date, a.DefaultMultiplier)
}
