package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/agendasoft/agenda-core/internal/config"
	"github.com/agendasoft/agenda-core/internal/models"
)

// NewDB opens (or creates) the storage file and brings the schema up to
// date. The design assumes at most one writer at a time, so the pool is
// pinned to a single connection and contention is left to SQLite's lock.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=5000", cfg.DBPath)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
