package cli

import (
	"context"
	"io"

	"github.com/barangayan/brgyems/internal/config"
	"github.com/barangayan/brgyems/internal/database"
	"github.com/barangayan/brgyems/internal/logger"
	"github.com/barangayan/brgyems/internal/repository"
	"github.com/rs/zerolog"
)

// Store is an open, bootstrapped records database
type Store struct {
	DB    *database.DB
	Repos *repository.Repositories

	closers []io.Closer
}

// Opener connects to the records store
type Opener func(ctx context.Context) (*Store, error)

// OpenStore connects with cfg and makes sure the schema exists
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*Store, error) {
	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureCreated(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	repos, err := repository.New(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{DB: db, Repos: repos}, nil
}

// OpenFromEnv loads configuration from the environment and logs to stderr
func OpenFromEnv(stderr io.Writer) Opener {
	return func(ctx context.Context) (*Store, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		log, logCloser, err := logger.New(logger.Options{
			Level:   cfg.LogLevel,
			Path:    cfg.LogFile,
			Console: true,
			Writer:  stderr,
		})
		if err != nil {
			return nil, err
		}
		store, err := OpenStore(ctx, cfg.Database, log)
		if err != nil {
			_ = logCloser.Close()
			return nil, err
		}
		store.closers = append(store.closers, logCloser)
		return store, nil
	}
}

func (s *Store) Close() error {
	err := s.DB.Close()
	for _, c := range s.closers {
		_ = c.Close()
	}
	return err
}
