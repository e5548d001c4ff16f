package pipeline

import (
	"context"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// TransactionSource supplies historical POS transactions. Implementations
// exist for the synthetic in-memory dataset and the backing store; the
// orchestrator depends only on this interface.
type TransactionSource interface {
	// Fetch returns transactions with timestamps at or after since. A limit
	// of 0 means no limit.
	Fetch(ctx context.Context, since time.Time, limit int) ([]models.Transaction, error)
}

// EmployeeSource supplies the staffing pool.
type EmployeeSource interface {
	FetchAll(ctx context.Context) ([]models.Employee, error)
}

// ForecastProvider returns a per-date demand multiplier for the planning
// horizon. Providers must return within a bounded number of exchanges or fall
// back to a neutral signal; they must not block the run indefinitely.
type ForecastProvider interface {
	Fetch(ctx context.Context, location string, dates []string) (models.ForecastSignal, error)
}

// CommentaryGenerator produces free-text commentary over structured data.
// The pipeline treats the output as an opaque string and substitutes an
// empty one when generation fails.
type CommentaryGenerator interface {
	Summarize(ctx context.Context, data any, query string) (string, error)
}

// RosterSink persists a completed schedule. Persistence failures are reported
// but never invalidate the computed result.
type RosterSink interface {
	Persist(ctx context.Context, result *models.ScheduleResult) error
}
