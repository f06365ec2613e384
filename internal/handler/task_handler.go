package handler

import (
	"log/slog"
	"net/http"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/service"
)

type TaskHandler struct {
	base
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		base:        newBase(logger),
		taskService: taskService,
	}
}

func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignTaskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskService.Assign(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.TaskAssignedResponse{
		Message: "Task assigned",
		TaskID:  task.TaskID,
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskID, ok := h.pathID(w, r, "task_id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.taskService.UpdateStatus(r.Context(), taskID, &req); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Task updated"})
}

func (h *TaskHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.pathID(w, r, "emp_id")
	if !ok {
		return
	}

	tasks, err := h.taskService.GetByEmployeeID(r.Context(), empID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.TaskResponse, len(tasks))
	for i := range tasks {
		resp[i] = h.toTaskResponse(&tasks[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *TaskHandler) toTaskResponse(task *domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		TaskID:      task.TaskID,
		EmpID:       task.EmpID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		AssignedBy:  task.AssignedBy,
		AssignedAt:  task.AssignedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
