package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/BennoAlif/cats-social/internal/config"
	"github.com/BennoAlif/cats-social/internal/platform/postgres"
	"github.com/BennoAlif/cats-social/internal/service/auth"
	"github.com/BennoAlif/cats-social/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	catStore  store.CatStore

	tokenService auth.TokenService
	hasher       auth.PasswordHasher
}

// newApplication creates a new application instance with all dependencies
// initialized. The configuration, logger and database connection must be
// established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"token_lifetime_hours", cfg.Auth.TokenLifetimeHours)

	app.hasher = auth.NewArgon2Hasher()

	app.userStore = postgres.NewUserStore(db, logger)
	app.catStore = postgres.NewCatStore(db, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
