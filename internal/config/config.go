package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultDatabaseFolder = "Database"
	defaultDatabaseFile   = "BarangayanEMS.db"
)

// ErrMissingJWTSecret is returned when the API server starts without a signing key
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Config holds all application configuration
type Config struct {
	AppEnv   string
	LogLevel string
	LogFile  string
	Database DatabaseConfig
	Server   ServerConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string

	// SQLite
	Dir  string
	File string

	// Postgres
	Host     string
	Port     string
	Username string
	Password string
	Database string

	SeedDemoUser bool
	Debug        bool
}

// ServerConfig holds HTTP API configuration
type ServerConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("parse TOKEN_TTL: %w", err)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverSQLite))
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
		Database: DatabaseConfig{
			Driver:       driver,
			Dir:          getEnv("DB_DIR", defaultDatabaseDir()),
			File:         getEnv("DB_FILE", defaultDatabaseFile),
			Host:         getEnv("PG_HOST", "localhost"),
			Port:         getEnv("PG_PORT", "5432"),
			Username:     getEnv("PG_USERNAME", "postgres"),
			Password:     os.Getenv("PG_PASSWORD"),
			Database:     getEnv("PG_DATABASE", "barangayan"),
			SeedDemoUser: getEnv("DB_SEED_DEMO", "true") == "true",
			Debug:        getEnv("DB_DEBUG", "false") == "true",
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "3210"),
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  ttl,
		},
	}, nil
}

// RequireJWTSecret fails when no token signing key is configured
func (c *Config) RequireJWTSecret() error {
	if c.Server.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Path returns the SQLite database file location
func (d DatabaseConfig) Path() string {
	return filepath.Join(d.Dir, d.File)
}

// DSN returns the connection string for the configured driver
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			d.Host, d.Port, d.Username, d.Password, d.Database,
		)
	}
	return d.Path() + "?_foreign_keys=on&_busy_timeout=5000"
}

// defaultDatabaseDir places the database next to the running executable
func defaultDatabaseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultDatabaseFolder
	}
	return filepath.Join(filepath.Dir(exe), defaultDatabaseFolder)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
