package database

import (
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrator creates and updates the database schema
type Migrator struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *gorm.DB, logger coreport.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// MigrateAll auto-migrates all table models
func (m *Migrator) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.Customer{},
		&model.Account{},
		&model.Transaction{},
		&model.Credential{},
	); err != nil {
		m.logger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
