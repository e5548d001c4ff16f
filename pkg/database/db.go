package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Transaction represents the pos_transactions table.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Timestamp       time.Time `gorm:"index;not null" json:"timestamp"`
	Items           int       `json:"items"`
	PrepTimeMinutes int       `json:"prep_time_minutes"`
}

// Employee represents the employees table.
type Employee struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Name            string  `gorm:"not null" json:"name"`
	Availability    string  `gorm:"not null;default:all" json:"availability"`
	ShiftPreference string  `gorm:"not null;default:no_preference" json:"shift_preference"`
	MaxHoursPerWeek float64 `gorm:"default:40" json:"max_hours_per_week"`
}

// RosterEntry represents one saved shift assignment in the schedules table.
type RosterEntry struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Date                   string    `gorm:"index;not null" json:"date"`
	Day                    string    `json:"day"`
	Shift                  string    `json:"shift"`
	ShiftTime              string    `json:"shift_time"`
	StaffNeeded            int       `json:"staff_needed"`
	StaffAssigned          int       `json:"staff_assigned"`
	Employees              string    `json:"employees"`
	PredictedOrdersPerHour float64   `json:"predicted_orders_per_hour"`
	CreatedAt              time.Time `json:"created_at"`
}

// APIKey represents the api_keys table.
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table.
type APIUsage struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	KeyID          uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date           string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount   int    `gorm:"default:0" json:"request_count"`
	TotalShifts    int    `gorm:"default:0" json:"total_shifts"`
	TotalEmployees int    `gorm:"default:0" json:"total_employees"`
}

// MasterUser represents the master_users table.
type MasterUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// InitDB opens the backing store and migrates the schema. Postgres is used
// when DATABASE_URL is set, sqlite otherwise.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "boba_bi.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&Transaction{}, &Employee{}, &RosterEntry{}, &APIKey{}, &APIUsage{}, &MasterUser{})

	return db
}
