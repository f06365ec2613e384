package handler

import (
	"log/slog"
	"net/http"

	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/service"
)

// ActivityHandler обрабатывает вход и выход сотрудников
type ActivityHandler struct {
	base
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		base:            newBase(logger),
		activityService: activityService,
	}
}

func (h *ActivityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	activity, err := h.activityService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.LoginResponse{
		Message:    "Login successful",
		ActivityID: activity.ActivityID,
		LoginTime:  activity.LoginTime,
	})
}

func (h *ActivityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	activityID, ok := h.pathID(w, r, "activity_id")
	if !ok {
		return
	}

	if _, err := h.activityService.Logout(r.Context(), activityID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logout updated"})
}
