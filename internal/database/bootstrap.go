package database

import (
	"context"
	"fmt"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/utils"
)

// Demo account created together with a brand-new database
const (
	DemoEmail     = "demo@barangayan.gov"
	DemoPassword  = "demo123"
	demoFirstName = "Demo"
	demoLastName  = "Resident"
)

// schemaModels are the tables every process start must find in place
var schemaModels = []interface{}{
	&models.User{},
	&models.DocumentRequest{},
	&models.BlotterRecord{},
	&models.FeedbackRecord{},
}

// EnsureCreated creates any missing table and, on the very first run, seeds
// the demo account. Existing tables and rows are never touched, so it is safe
// to call on every start.
func (db *DB) EnsureCreated(ctx context.Context) error {
	migrator := db.WithContext(ctx).Migrator()
	isNewDatabase := !migrator.HasTable(&models.User{})

	if db.IsSQLite() {
		if err := db.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := db.EnsureTable(ctx, schemaModels...); err != nil {
		return err
	}

	if isNewDatabase && db.cfg.SeedDemoUser {
		if err := db.seedDemoUser(ctx); err != nil {
			return err
		}
		db.log.Info().Str("email", DemoEmail).Msg("🌱 Seeded demo account")
	}

	db.log.Info().Bool("newDatabase", isNewDatabase).Msg("✅ Schema ready")
	return nil
}

// EnsureTable creates the table behind each model unless it already exists
func (db *DB) EnsureTable(ctx context.Context, tables ...interface{}) error {
	migrator := db.WithContext(ctx).Migrator()
	for _, table := range tables {
		if migrator.HasTable(table) {
			continue
		}
		if err := migrator.CreateTable(table); err != nil {
			return fmt.Errorf("create table for %T: %w", table, err)
		}
	}
	return nil
}

func (db *DB) seedDemoUser(ctx context.Context) error {
	hash, salt, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	user := models.User{
		FirstName:    demoFirstName,
		LastName:     demoLastName,
		Email:        DemoEmail,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    models.Now(),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	return nil
}
