package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/monitoring-tool-api/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open открывает пул соединений с БД, повторяя попытки подключения,
// пока база не станет доступна
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.NewSlogLogger(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	}

	attempts := max(cfg.ConnectAttempts, 1)

	var db *gorm.DB
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			if err = ping(ctx, db); err == nil {
				break
			}
		}

		logger.Warn("database is not ready",
			slog.String("driver", cfg.Driver),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt == attempts {
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// SQLite допускает только одного писателя, а in-memory база живёт в рамках соединения
	if cfg.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Ping проверяет доступность БД
func Ping(ctx context.Context, db *gorm.DB) error {
	return ping(ctx, db)
}

// Close закрывает пул соединений
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
