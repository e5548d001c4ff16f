package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/alexgaoth/boba-bi/pkg/models"
)

// Store adapts the backing database to the pipeline's source and sink
// interfaces: TransactionSource, EmployeeSource and RosterSink.
type Store struct {
	DB *gorm.DB
}

// Fetch implements pipeline.TransactionSource.
func (s *Store) Fetch(ctx context.Context, since time.Time, limit int) ([]models.Transaction, error) {
	q := s.DB.WithContext(ctx).Model(&Transaction{}).Where("timestamp >= ?", since).Order("timestamp")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []Transaction
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("could not fetch transactions: %w", err)
	}

	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Transaction{
			OrderID:         int(row.ID),
			Timestamp:       row.Timestamp,
			Items:           row.Items,
			PrepTimeMinutes: row.PrepTimeMinutes,
		})
	}
	return out, nil
}

// FetchAll implements pipeline.EmployeeSource.
func (s *Store) FetchAll(ctx context.Context) ([]models.Employee, error) {
	var rows []Employee
	if err := s.DB.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("could not fetch employees: %w", err)
	}

	out := make([]models.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Employee{
			ID:              int(row.ID),
			Name:            row.Name,
			Availability:    models.Availability(row.Availability),
			ShiftPreference: row.ShiftPreference,
			MaxHoursPerWeek: row.MaxHoursPerWeek,
		})
	}
	return out, nil
}

// Persist implements pipeline.RosterSink. Each run's roster is appended as a
// batch of rows sharing a creation time.
func (s *Store) Persist(ctx context.Context, result *models.ScheduleResult) error {
	now := time.Now()
	entries := make([]RosterEntry, 0, len(result.Schedule))
	for _, a := range result.Schedule {
		entries = append(entries, RosterEntry{
			Date:                   a.Date,
			Day:                    a.Day,
			Shift:                  a.Shift,
			ShiftTime:              a.ShiftTime,
			StaffNeeded:            a.StaffNeeded,
			StaffAssigned:          a.StaffAssigned,
			Employees:              strings.Join(a.Employees, ", "),
			PredictedOrdersPerHour: a.PredictedOrdersPerHour,
			CreatedAt:              now,
		})
	}
	if err := s.DB.WithContext(ctx).Create(&entries).Error; err != nil {
		return fmt.Errorf("could not save roster: %w", err)
	}
	return nil
}

// Counts returns the stored transaction and employee totals for the stats
// endpoint.
func (s *Store) Counts(ctx context.Context) (transactions, employees int64, err error) {
	if err = s.DB.WithContext(ctx).Model(&Transaction{}).Count(&transactions).Error; err != nil {
		return 0, 0, fmt.Errorf("could not count transactions: %w", err)
	}
	if err = s.DB.WithContext(ctx).Model(&Employee{}).Count(&employees).Error; err != nil {
		return 0, 0, fmt.Errorf("could not count employees: %w", err)
	}
	return transactions, employees, nil
}

// Seed loads a synthetic dataset into an empty store. Non-empty tables are
// left untouched.
func (s *Store) Seed(ctx context.Context, transactions []models.Transaction, employees []models.Employee) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, emp := range employees {
		row := Employee{
			Name:            emp.Name,
			Availability:    string(emp.Availability),
			ShiftPreference: emp.ShiftPreference,
			MaxHoursPerWeek: emp.MaxHoursPerWeek,
		}
		if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("could not seed employees: %w", err)
		}
	}

	rows := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, Transaction{
			Timestamp:       tx.Timestamp,
			Items:           tx.Items,
			PrepTimeMinutes: tx.PrepTimeMinutes,
		})
	}
	// Batch inserts keep sqlite seeding fast enough for startup.
	if err := s.DB.WithContext(ctx).CreateInBatches(rows, 500).Error; err != nil {
		return fmt.Errorf("could not seed transactions: %w", err)
	}
	return nil
}
