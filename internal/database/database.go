package database

import (
	"fmt"
	"os"
	"time"

	"github.com/barangayan/brgyems/internal/config"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps gorm.DB together with the settings it was opened with
type DB struct {
	*gorm.DB
	cfg config.DatabaseConfig
	log zerolog.Logger
}

// Connect opens the records database. SQLite (the default) lives in a single
// file whose directory is created on demand; Postgres serves offices that
// share one database between several workstations.
func Connect(cfg config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverPostgres:
		log.Info().Str("host", cfg.Host).Str("port", cfg.Port).Msg("🌐 Mode: [External PostgreSQL]")
		dialector = postgres.Open(cfg.DSN())
	default:
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Dir, err)
		}
		log.Info().Str("path", cfg.Path()).Msg("📦 Mode: [Embedded SQLite]")
		dialector = sqlite.Open(cfg.DSN())
	}

	// Configure GORM
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gormLog := log.With().Str("component", "gorm").Logger()

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(&gormLog, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.Driver == config.DriverPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// One writer at a time; the engine would serialize them anyway.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Msg("✅ Database connection established")

	return &DB{
		DB:  db,
		cfg: cfg,
		log: log,
	}, nil
}

// Close releases the connection pool
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsSQLite reports whether the embedded driver is in use
func (db *DB) IsSQLite() bool {
	return db.cfg.Driver != config.DriverPostgres
}
