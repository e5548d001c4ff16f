package agent

import (
	"context"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// StaticProvider is a deterministic ForecastProvider for demos and tests:
// the third and sixth day of the horizon are treated as rainy (0.7), the
// rest as good boba weather (1.1).
type StaticProvider struct{}

// Fetch implements pipeline.ForecastProvider.
func (StaticProvider) Fetch(_ context.Context, _ string, dates []string) (models.ForecastSignal, error) {
	signal := make(models.ForecastSignal, len(dates))
	for i, date := range dates {
		if i == 2 || i == 5 {
			signal[date] = 0.7
		} else {
			signal[date] = 1.1
		}
	}
	return signal, nil
}
