package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/monitoring-tool-api/internal/dto"
)

// HealthHandler отвечает на служебные запросы о состоянии сервиса
type HealthHandler struct {
	base
	ping func(ctx context.Context) error
}

// NewHealthHandler создаёт хендлер; ping проверяет доступность БД
func NewHealthHandler(ping func(ctx context.Context) error, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		base: newBase(logger),
		ping: ping,
	}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Monitoring Tool API is running!"})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
