package config

import (
	"os"
	"strconv"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// Config carries every tunable of the scheduling pipeline. It is built once at
// startup and passed by value so concurrent runs (and tests) can each use
// their own settings instead of sharing process globals.
type Config struct {
	Location             string
	Shifts               []models.ShiftDefinition
	MinStaffPerShift     int
	OrdersPerStaff       float64
	DefaultOrdersPerHour float64
	DefaultMultiplier    float64
	WindowDays           int
	HorizonDays          int
	ForecastRounds       int
}

// Default returns the shop's standard configuration: two fixed 8-hour shifts,
// a floor of 2 staff per shift, and one staff member per 15 orders/hour.
func Default() Config {
	return Config{
		Location: "San Diego, CA",
		Shifts: []models.ShiftDefinition{
			{Name: models.PreferMorning, Start: "08:00", End: "16:00", Hours: 8},
			{Name: models.PreferEvening, Start: "16:00", End: "00:00", Hours: 8},
		},
		MinStaffPerShift:     2,
		OrdersPerStaff:       15,
		DefaultOrdersPerHour: 20,
		DefaultMultiplier:    1.0,
		WindowDays:           28,
		HorizonDays:          7,
		ForecastRounds:       3,
	}
}

// FromEnv returns Default overridden by BOBA_* environment variables.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv("BOBA_LOCATION"); v != "" {
		cfg.Location = v
	}
	cfg.MinStaffPerShift = envInt("BOBA_MIN_STAFF", cfg.MinStaffPerShift)
	cfg.WindowDays = envInt("BOBA_WINDOW_DAYS", cfg.WindowDays)
	cfg.HorizonDays = envInt("BOBA_HORIZON_DAYS", cfg.HorizonDays)
	cfg.ForecastRounds = envInt("BOBA_FORECAST_ROUNDS", cfg.ForecastRounds)
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
