package models

import (
	"strconv"
	"strings"
	"time"
)

// Availability describes which days of the week an employee can work.
type Availability string

const (
	AvailabilityAll         Availability = "all"
	AvailabilityWeekdayOnly Availability = "weekday_only"
	AvailabilityWeekendOnly Availability = "weekend_only"
)

// Shift preference values. NoPreference matches either shift.
const (
	PreferMorning = "morning"
	PreferEvening = "evening"
	NoPreference  = "no_preference"
)

// Transaction is a single POS order. The scheduler only reads the timestamp;
// the remaining fields are carried for reporting parity with the POS feed.
type Transaction struct {
	OrderID         int       `json:"order_id"`
	Timestamp       time.Time `json:"timestamp"`
	Items           int       `json:"items"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
}

// Employee is an immutable staffing record. The pipeline never mutates it;
// availability checks produce annotated Candidate copies instead.
type Employee struct {
	ID              int          `json:"employee_id"`
	Name            string       `json:"name"`
	Availability    Availability `json:"availability"`
	ShiftPreference string       `json:"shift_preference"`
	MaxHoursPerWeek float64      `json:"max_hours_per_week"`
}

// Candidate is an employee annotated with how well a specific (day, shift)
// query matches their stated preference: 2 exact, 1 no preference, 0 other.
type Candidate struct {
	Employee
	PreferenceScore int `json:"preference_score"`
}

// ShiftDefinition is one entry of the fixed shift catalog.
type ShiftDefinition struct {
	Name  string  `json:"name"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Hours float64 `json:"hours"`
}

// ContainsHour reports whether the given hour of day falls inside [Start, End).
// An End of "00:00" is treated as midnight at the close of the day.
func (s ShiftDefinition) ContainsHour(hour int) bool {
	start := hourOf(s.Start)
	end := hourOf(s.End)
	if end == 0 {
		end = 24
	}
	return hour >= start && hour < end
}

// TimeRange renders the shift window as "08:00-16:00".
func (s ShiftDefinition) TimeRange() string {
	return s.Start + "-" + s.End
}

func hourOf(hhmm string) int {
	h, _ := strconv.Atoi(strings.SplitN(hhmm, ":", 2)[0])
	return h
}

// DemandEstimate maps weekday name -> shift name -> average orders per hour,
// derived from a trailing window of transactions. Buckets with no traffic in
// the window are absent rather than zero.
type DemandEstimate map[string]map[string]float64

// ForecastSignal maps an ISO date (2006-01-02) to a multiplicative demand
// adjustment. Missing dates default to a neutral 1.0 at lookup time.
type ForecastSignal map[string]float64

// Multiplier returns the adjustment for a date, or fallback when absent.
func (f ForecastSignal) Multiplier(date string, fallback float64) float64 {
	if m, ok := f[date]; ok {
		return m
	}
	return fallback
}

// ShiftAssignment is the roster entry for one (date, shift) pair. Understaffing
// (StaffAssigned < StaffNeeded) is reported as data, never as an error.
type ShiftAssignment struct {
	Date                   string   `json:"date"`
	Day                    string   `json:"day"`
	Shift                  string   `json:"shift"`
	ShiftTime              string   `json:"shift_time"`
	StaffNeeded            int      `json:"staff_needed"`
	StaffAssigned          int      `json:"staff_assigned"`
	Employees              []string `json:"employees"`
	PredictedOrdersPerHour float64  `json:"predicted_orders_per_hour"`
}

// Roster is the full ordered schedule over a planning horizon: exactly one
// entry per (date, shift) pair, in date then catalog order.
type Roster []ShiftAssignment

// ScheduleResult bundles one orchestration run's output.
type ScheduleResult struct {
	Query           string   `json:"query"`
	TrafficAnalysis string   `json:"traffic_analysis"`
	WeatherAnalysis string   `json:"weather_analysis"`
	Schedule        Roster   `json:"schedule"`
	Dates           []string `json:"dates"`
	FairnessScore   float64  `json:"fairness_score"`
}

// ScheduleRequest is the body accepted by the scheduling endpoints.
type ScheduleRequest struct {
	Query string `json:"query"`
}

// IsWeekendDay reports whether a weekday name is Saturday or Sunday.
func IsWeekendDay(day string) bool {
	return day == time.Saturday.String() || day == time.Sunday.String()
}
