package datagen

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

func TestGenerateTransactions(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewSource(42))

	transactions := GenerateTransactions(2, now, r)
	require.NotEmpty(t, transactions)

	start := now.AddDate(0, 0, -14)
	windowStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	for i, tx := range transactions {
		hour := tx.Timestamp.Hour()
		assert.GreaterOrEqual(t, hour, 8, "orders only during opening hours")
		assert.Less(t, hour, 24)
		assert.GreaterOrEqual(t, tx.Items, 1)
		assert.LessOrEqual(t, tx.Items, 4)
		assert.Equal(t, i+1, tx.OrderID, "order IDs are sequential")
		assert.False(t, tx.Timestamp.Before(windowStart))
	}
}

func TestGenerateTransactions_WeekendsAreBusier(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	r := rand.New(rand.NewSource(7))

	transactions := GenerateTransactions(4, now, r)

	weekday, weekend := 0, 0
	for _, tx := range transactions {
		if wd := tx.Timestamp.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		} else {
			weekday++
		}
	}

	assert.Greater(t, float64(weekend)/(2*4), float64(weekday)/(5*4),
		"weekend days average more orders than weekdays")
}

func TestGenerateEmployees(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	employees := GenerateEmployees(10, r)
	require.Len(t, employees, 10)

	names := make(map[string]bool)
	for i, emp := range employees {
		assert.Equal(t, i+1, emp.ID)
		assert.False(t, names[emp.Name], "names are unique")
		names[emp.Name] = true
		assert.InDelta(t, 40.0, emp.MaxHoursPerWeek, 1e-9)
	}

	capped := GenerateEmployees(50, r)
	assert.Len(t, capped, 10, "pool size is capped by the name list")
}

func TestMemorySource(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{OrderID: 1, Timestamp: now.AddDate(0, 0, -40)},
		{OrderID: 2, Timestamp: now.AddDate(0, 0, -10)},
		{OrderID: 3, Timestamp: now.AddDate(0, 0, -1)},
	}
	employees := []models.Employee{{ID: 1, Name: "Alex Chen"}}
	source := NewMemorySource(transactions, employees)

	recent, err := source.Fetch(context.Background(), now.AddDate(0, 0, -28), 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 2, recent[0].OrderID)

	limited, err := source.Fetch(context.Background(), time.Time{}, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	pool, err := source.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, pool, 1)

	pool[0].Name = "changed"
	again, err := source.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alex Chen", again[0].Name, "callers get a copy of the snapshot")
}
