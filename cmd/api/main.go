package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/barangayan/brgyems/internal/buildinfo"
	"github.com/barangayan/brgyems/internal/config"
	"github.com/barangayan/brgyems/internal/database"
	"github.com/barangayan/brgyems/internal/handlers"
	"github.com/barangayan/brgyems/internal/logger"
	"github.com/barangayan/brgyems/internal/repository"
	"github.com/barangayan/brgyems/internal/websocket"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log, logCloser, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Path:    cfg.LogFile,
		Console: cfg.IsDevelopment(),
	})
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Failed to open log file")
	}
	defer logCloser.Close()

	if err := cfg.RequireJWTSecret(); err != nil {
		log.Fatal().Err(err).Msg("Refusing to start without a token signing key")
	}

	// 2. Connect and make sure every table exists
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	log.Info().Msg("🚀 Ensuring database schema...")
	if err := db.EnsureCreated(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	repos, err := repository.New(context.Background(), db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare repositories")
	}

	// 3. Dashboard change feed
	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := websocket.NewHub(log)
	go hub.Run(hubCtx)

	// 4. Set up HTTP router
	router := handlers.NewRouter(repos, hub, cfg.Server, log)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for shutdown signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().
			Str("port", cfg.Server.Port).
			Str("version", buildinfo.Version).
			Str("commit", buildinfo.CommitHash).
			Str("started", buildinfo.StartTime).
			Msg("🚀 Records API starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	sig := <-shutdown
	log.Warn().Str("signal", sig.String()).Msg("⚠️ Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	stopHub()

	log.Info().Msg("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Database close error")
	}

	log.Info().Msg("✅ Shutdown complete")
}
