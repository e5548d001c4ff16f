package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/analysis"
	"github.com/alexgaoth/boba-bi/pkg/config"
	"github.com/alexgaoth/boba-bi/pkg/models"
	"github.com/alexgaoth/boba-bi/pkg/scheduler"
)

// ErrDataUnavailable is returned when the historical transaction feed or the
// employee pool is empty or unreachable. It is the only error that fails a
// run; every other collaborator failure degrades the result instead.
var ErrDataUnavailable = errors.New("historical data unavailable")

// forecastTimeout bounds the external forecast exchange per run.
const forecastTimeout = 60 * time.Second

// Deps are the external collaborators of one orchestrator. Commentary and
// Sink may be nil; Transactions, Employees and Forecast are required.
type Deps struct {
	Transactions TransactionSource
	Employees    EmployeeSource
	Forecast     ForecastProvider
	Commentary   CommentaryGenerator
	Sink         RosterSink
	Logger       *slog.Logger
	Now          func() time.Time
}

// Orchestrator runs the staged scheduling pipeline: analyze demand, fetch the
// forecast, assign shifts, assemble the result. It holds no state across runs.
type Orchestrator struct {
	cfg  config.Config
	deps Deps
}

// New builds an Orchestrator. A nil logger defaults to slog.Default and a nil
// clock to time.Now.
func New(cfg config.Config, deps Deps) *Orchestrator {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Orchestrator{cfg: cfg, deps: deps}
}

// PlanningDates returns the horizon: HorizonDays consecutive dates starting
// tomorrow relative to the orchestrator's clock.
func (o *Orchestrator) PlanningDates() []string {
	now := o.deps.Now()
	dates := make([]string, 0, o.cfg.HorizonDays)
	for i := 1; i <= o.cfg.HorizonDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

// Run executes one scheduling pass for the given business query. Demand
// aggregation and the forecast fetch run concurrently; assignment starts once
// both complete. The run fails only on missing input data.
func (o *Orchestrator) Run(ctx context.Context, query string) (*models.ScheduleResult, error) {
	dates := o.PlanningDates()
	log := o.deps.Logger

	employees, err := o.deps.Employees.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: employees: %v", ErrDataUnavailable, err)
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("%w: employee pool is empty", ErrDataUnavailable)
	}

	var (
		wg       sync.WaitGroup
		estimate models.DemandEstimate
		txCount  int
		txErr    error
		signal   models.ForecastSignal
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		since := o.deps.Now().AddDate(0, 0, -o.cfg.WindowDays)
		transactions, err := o.deps.Transactions.Fetch(ctx, since, 0)
		if err != nil {
			txErr = fmt.Errorf("%w: transactions: %v", ErrDataUnavailable, err)
			return
		}
		if len(transactions) == 0 {
			txErr = fmt.Errorf("%w: no transactions in the last %d days", ErrDataUnavailable, o.cfg.WindowDays)
			return
		}
		txCount = len(transactions)
		agg := analysis.NewAggregator(o.cfg.Shifts, o.deps.Now)
		estimate = agg.Aggregate(transactions, o.cfg.WindowDays)
	}()
	go func() {
		defer wg.Done()
		fctx, cancel := context.WithTimeout(ctx, forecastTimeout)
		defer cancel()
		fetched, err := o.deps.Forecast.Fetch(fctx, o.cfg.Location, dates)
		if err != nil {
			log.Warn("forecast fetch failed, using neutral signal", "error", err)
			signal = models.ForecastSignal{}
			return
		}
		signal = fetched
	}()
	wg.Wait()

	if txErr != nil {
		return nil, txErr
	}
	log.Info("demand analyzed", "transactions", txCount, "window_days", o.cfg.WindowDays)

	trafficAnalysis := o.summarize(ctx, estimate, query, "traffic")
	weatherAnalysis := o.summarize(ctx, signal, query, "weather")

	roster := scheduler.NewAssigner(o.cfg).Assign(estimate, signal, dates, employees)
	log.Info("roster assembled", "entries", len(roster), "dates", len(dates))

	result := &models.ScheduleResult{
		Query:           query,
		TrafficAnalysis: trafficAnalysis,
		WeatherAnalysis: weatherAnalysis,
		Schedule:        roster,
		Dates:           dates,
		FairnessScore:   scheduler.FairnessScore(roster, employees, o.cfg.Shifts),
	}

	if o.deps.Sink != nil {
		if err := o.deps.Sink.Persist(ctx, result); err != nil {
			log.Error("roster persistence failed", "error", err)
		}
	}
	return result, nil
}

func (o *Orchestrator) summarize(ctx context.Context, data any, query, kind string) string {
	if o.deps.Commentary == nil {
		return ""
	}
	text, err := o.deps.Commentary.Summarize(ctx, data, query)
	if err != nil {
		o.deps.Logger.Warn("commentary generation failed", "kind", kind, "error", err)
		return ""
	}
	return text
}
