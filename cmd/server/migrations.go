package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/BennoAlif/cats-social/internal/config"
	"github.com/BennoAlif/cats-social/migrations"
)

// runMigrations executes a goose migration command against the
// configured database using the embedded migration files.
func runMigrations(cfg *config.Config, command string) error {
	migrationLogger := slog.Default().With("component", "migrations", "command", command)

	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing database connection", "error", err)
		}
	}()

	// Migrations run from a dedicated short-lived pool.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	start := time.Now()
	migrationLogger.Info("Starting migration operation")

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		return fmt.Errorf("unknown migration command: %q", command)
	}
	if err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
