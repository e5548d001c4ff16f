package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/config"
	"github.com/alexgaoth/boba-bi/pkg/models"
)

// Assigner greedily fills every (date, shift) slot of a planning horizon.
// One Assigner value is safe for concurrent use: the per-run hour accumulator
// lives inside each Assign call, never on the struct.
type Assigner struct {
	cfg      config.Config
	adjuster Adjuster
}

// NewAssigner builds an Assigner from the pipeline configuration.
func NewAssigner(cfg config.Config) *Assigner {
	return &Assigner{
		cfg: cfg,
		adjuster: Adjuster{
			DefaultOrdersPerHour: cfg.DefaultOrdersPerHour,
			DefaultMultiplier:    cfg.DefaultMultiplier,
		},
	}
}

// Assign produces one ShiftAssignment per (date, shift) pair, in date then
// catalog order. Candidates are ranked by preference score, then by fewest
// hours already assigned this horizon, then by stable input order, and are
// assigned while headcount is open and the weekly hour cap holds. A pool too
// small to meet demand yields understaffed entries, never an error. The
// result is deterministic for identical inputs.
func (s *Assigner) Assign(estimate models.DemandEstimate, signal models.ForecastSignal, dates []string, employees []models.Employee) models.Roster {
	hoursUsed := make(map[int]float64, len(employees))
	roster := make(models.Roster, 0, len(dates)*len(s.cfg.Shifts))

	for _, date := range dates {
		day := dayName(date)

		for _, shift := range s.cfg.Shifts {
			adjusted := s.adjuster.Adjust(estimate, day, shift.Name, date, signal)
			needed := int(math.Floor(adjusted / s.cfg.OrdersPerStaff))
			if needed < s.cfg.MinStaffPerShift {
				needed = s.cfg.MinStaffPerShift
			}

			candidates := Available(employees, day, shift.Name)
			sort.SliceStable(candidates, func(i, j int) bool {
				if candidates[i].PreferenceScore != candidates[j].PreferenceScore {
					return candidates[i].PreferenceScore > candidates[j].PreferenceScore
				}
				return hoursUsed[candidates[i].ID] < hoursUsed[candidates[j].ID]
			})

			assigned := make([]string, 0, needed)
			for _, cand := range candidates {
				if len(assigned) >= needed {
					break
				}
				if hoursUsed[cand.ID]+shift.Hours > cand.MaxHoursPerWeek {
					continue
				}
				assigned = append(assigned, cand.Name)
				hoursUsed[cand.ID] += shift.Hours
			}

			roster = append(roster, models.ShiftAssignment{
				Date:                   date,
				Day:                    day,
				Shift:                  shift.Name,
				ShiftTime:              shift.TimeRange(),
				StaffNeeded:            needed,
				StaffAssigned:          len(assigned),
				Employees:              assigned,
				PredictedOrdersPerHour: math.Round(adjusted*10) / 10,
			})
		}
	}
	return roster
}

func dayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
