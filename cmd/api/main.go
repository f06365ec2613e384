package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monitoring-tool-api/internal/config"
	"github.com/monitoring-tool-api/internal/database"
	"github.com/monitoring-tool-api/internal/handler"
	"github.com/monitoring-tool-api/internal/repository"
	"github.com/monitoring-tool-api/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к БД
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("could not close database connection", slog.Any("error", err))
		}
	}()

	// Запуск миграций
	if err := database.Migrate(ctx, db, cfg.Database.Driver, logger); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	empRepo := repository.NewEmployeeRepository(db)
	activityRepo := repository.NewLoginActivityRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Инициализация сервисов
	empService := service.NewEmployeeService(empRepo, time.Now)
	activityService := service.NewActivityService(activityRepo, time.Now)
	leaveService := service.NewLeaveService(leaveRepo, time.Now)
	taskService := service.NewTaskService(taskRepo, time.Now)

	// Инициализация хендлеров
	handlers := handler.Handlers{
		Employee: handler.NewEmployeeHandler(empService, logger),
		Activity: handler.NewActivityHandler(activityService, logger),
		Leave:    handler.NewLeaveHandler(leaveService, logger),
		Task:     handler.NewTaskHandler(taskService, logger),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, logger),
	}

	// Настройка роутера
	router := handler.NewRouter(handlers, cfg.RateLimit, logger)

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info("server is shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		stop()
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
