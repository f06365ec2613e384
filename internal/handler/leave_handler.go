package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/service"
)

type LeaveHandler struct {
	base
	leaveService service.LeaveService
}

func NewLeaveHandler(leaveService service.LeaveService, logger *slog.Logger) *LeaveHandler {
	return &LeaveHandler{
		base:         newBase(logger),
		leaveService: leaveService,
	}
}

func (h *LeaveHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyLeaveRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	leave, err := h.leaveService.Apply(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.LeaveAppliedResponse{
		Message: "Leave applied",
		LeaveID: leave.LeaveID,
	})
}

func (h *LeaveHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	empID, ok := h.pathID(w, r, "emp_id")
	if !ok {
		return
	}

	leaves, err := h.leaveService.GetByEmployeeID(r.Context(), empID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.LeaveResponse, len(leaves))
	for i := range leaves {
		resp[i] = h.toLeaveResponse(&leaves[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Respond принимает решение администратора из query-параметров status и admin_comment
func (h *LeaveHandler) Respond(w http.ResponseWriter, r *http.Request) {
	leaveID, ok := h.pathID(w, r, "leave_id")
	if !ok {
		return
	}

	query := dto.RespondLeaveQuery{
		Status:       r.URL.Query().Get("status"),
		AdminComment: r.URL.Query().Get("admin_comment"),
	}
	if !h.validate(w, &query) {
		return
	}

	leave, err := h.leaveService.Respond(r.Context(), leaveID, &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: "Leave " + string(leave.Status)})
}

func (h *LeaveHandler) toLeaveResponse(leave *domain.Leave) dto.LeaveResponse {
	return dto.LeaveResponse{
		LeaveID:      leave.LeaveID,
		EmpID:        leave.EmpID,
		LeaveType:    string(leave.LeaveType),
		StartDate:    dto.FormatDate(time.Time(leave.StartDate)),
		EndDate:      dto.FormatDate(time.Time(leave.EndDate)),
		Reason:       leave.Reason,
		Status:       string(leave.Status),
		AdminComment: leave.AdminComment,
		AppliedAt:    leave.AppliedAt,
		RespondedAt:  leave.RespondedAt,
	}
}
