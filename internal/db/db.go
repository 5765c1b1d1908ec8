package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/servicenote/internal/models"
)

// Open opens the SQLite database at dbPath, creating the file and its
// directory when missing, and runs migrations. The caller owns the handle
// and must release it with Close.
func Open(dbPath string) (*gorm.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(database); err != nil {
		_ = Close(database)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return database, nil
}

// runMigrations creates/updates the database schema
func runMigrations(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.DailyReport{},
		&models.StudentMonth{},
		&models.MonthlyReport{},
		&models.BibleStudent{},
		&models.InterestedPerson{},
		&models.Note{},
		&models.ServiceSession{},
	)
}

// Close closes the underlying connection pool
func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
