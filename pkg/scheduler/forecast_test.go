package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

func TestAdjust(t *testing.T) {
	adjuster := Adjuster{DefaultOrdersPerHour: 20, DefaultMultiplier: 1.0}

	estimate := models.DemandEstimate{
		"Monday": {"morning": 30.0},
	}
	signal := models.ForecastSignal{
		"2025-09-01": 0.7,
	}

	tests := []struct {
		name  string
		day   string
		shift string
		date  string
		want  float64
	}{
		{name: "known bucket with multiplier", day: "Monday", shift: "morning", date: "2025-09-01", want: 21.0},
		{name: "known bucket, date missing from signal", day: "Monday", shift: "morning", date: "2025-09-02", want: 30.0},
		{name: "missing shift falls back to default average", day: "Monday", shift: "evening", date: "2025-09-02", want: 20.0},
		{name: "missing day falls back to default average", day: "Tuesday", shift: "morning", date: "2025-09-02", want: 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjuster.Adjust(estimate, tt.day, tt.shift, tt.date, signal)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAdjust_NoClamping(t *testing.T) {
	adjuster := Adjuster{DefaultOrdersPerHour: 20, DefaultMultiplier: 1.0}
	estimate := models.DemandEstimate{"Monday": {"morning": 100.0}}
	signal := models.ForecastSignal{"2025-09-01": 50.0}

	got := adjuster.Adjust(estimate, "Monday", "morning", "2025-09-01", signal)
	assert.InDelta(t, 5000.0, got, 1e-9, "pathological multipliers pass through unclamped")
}
