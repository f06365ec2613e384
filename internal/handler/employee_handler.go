package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/service"
)

type EmployeeHandler struct {
	base
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		base:       newBase(logger),
		empService: empService,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.EmployeeCreatedResponse{
		Message:    "Employee created",
		EmployeeID: emp.EmpID,
	})
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = h.toEmployeeResponse(&employees[i])
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		EmpID:       emp.EmpID,
		FullName:    emp.FullName,
		Email:       emp.Email,
		Phone:       emp.Phone,
		Department:  emp.Department,
		Designation: emp.Designation,
		CreatedAt:   emp.CreatedAt,
	}

	if emp.Gender != nil {
		gender := string(*emp.Gender)
		resp.Gender = &gender
	}
	if emp.BloodGroup != nil {
		bloodGroup := string(*emp.BloodGroup)
		resp.BloodGroup = &bloodGroup
	}
	if emp.Status != nil {
		status := string(*emp.Status)
		resp.Status = &status
	}
	if emp.JoinDate != nil {
		joinDate := dto.FormatDate(time.Time(*emp.JoinDate))
		resp.JoinDate = &joinDate
	}

	return resp
}
