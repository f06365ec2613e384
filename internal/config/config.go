package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix - префикс переменных окружения приложения
const envPrefix = "MONITOR_"

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Log       LogConfig       `koanf:"log"`
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres mysql sqlite"`
	Host            string        `koanf:"host" validate:"required_unless=Driver sqlite"`
	Port            string        `koanf:"port" validate:"required_unless=Driver sqlite"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required_unless=Driver sqlite"`
	SSLMode         string        `koanf:"ssl_mode"`
	Path            string        `koanf:"path" validate:"required_if=Driver sqlite"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnectAttempts int           `koanf:"connect_attempts" validate:"min=1"`
}

// RateLimitConfig - ограничение частоты запросов на клиента; RPS = 0 отключает лимит
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps" validate:"min=0"`
	Burst int     `koanf:"burst" validate:"min=1"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.Name,
		)
	case DriverSQLite:
		q := url.Values{}
		q.Set("_foreign_keys", "on")
		if strings.Contains(c.Path, "?") {
			return c.Path + "&" + q.Encode()
		}
		return c.Path + "?" + q.Encode()
	default:
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
		)
	}
}

// SlogLevel переводит уровень логирования из конфигурации в slog.Level
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          DriverMySQL,
			Host:            "localhost",
			Port:            "3306",
			User:            "monitor",
			Password:        "monitor",
			Name:            "monitor",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
			ConnectAttempts: 30,
		},
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load загружает конфигурацию из переменных окружения (и .env, если он есть).
// MONITOR_DATABASE_MAX_OPEN_CONNS -> database.max_open_conns
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
