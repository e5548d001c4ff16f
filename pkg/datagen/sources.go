package datagen

import (
	"context"
	"time"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// MemorySource serves a fixed transaction history and employee pool from
// memory. The snapshots are read-only once constructed, so concurrent
// pipeline runs can share one MemorySource safely.
type MemorySource struct {
	transactions []models.Transaction
	employees    []models.Employee
}

// NewMemorySource wraps the given snapshots. Callers must not mutate the
// slices afterwards.
func NewMemorySource(transactions []models.Transaction, employees []models.Employee) *MemorySource {
	return &MemorySource{transactions: transactions, employees: employees}
}

// Fetch implements pipeline.TransactionSource.
func (m *MemorySource) Fetch(_ context.Context, since time.Time, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range m.transactions {
		if tx.Timestamp.Before(since) {
			continue
		}
		out = append(out, tx)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// FetchAll implements pipeline.EmployeeSource.
func (m *MemorySource) FetchAll(_ context.Context) ([]models.Employee, error) {
	out := make([]models.Employee, len(m.employees))
	copy(out, m.employees)
	return out, nil
}
