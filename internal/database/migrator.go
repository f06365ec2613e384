package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/monitoring-tool-api/internal/config"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations
var embedMigrations embed.FS

// Migrate применяет встроенные миграции для диалекта выбранного драйвера
func Migrate(ctx context.Context, db *gorm.DB, driver string, logger *slog.Logger) error {
	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, "migrations/postgres", nil
	case config.DriverMySQL:
		return goose.DialectMySQL, "migrations/mysql", nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, "migrations/sqlite3", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
