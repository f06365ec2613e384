package service

import (
	"context"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/repository"
	"gorm.io/datatypes"
)

// LeaveService определяет интерфейс бизнес-логики для заявок на отпуск
type LeaveService interface {
	Apply(ctx context.Context, req *dto.ApplyLeaveRequest) (*domain.Leave, error)
	GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Leave, error)
	Respond(ctx context.Context, leaveID int64, query *dto.RespondLeaveQuery) (*domain.Leave, error)
}

type leaveService struct {
	leaveRepo repository.LeaveRepository
	now       Clock
}

// NewLeaveService создаёт новый экземпляр сервиса
func NewLeaveService(leaveRepo repository.LeaveRepository, now Clock) LeaveService {
	return &leaveService{
		leaveRepo: leaveRepo,
		now:       now,
	}
}

// Apply создаёт заявку всегда в статусе pending
func (s *leaveService) Apply(ctx context.Context, req *dto.ApplyLeaveRequest) (*domain.Leave, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	leave := &domain.Leave{
		EmpID:     req.EmpID,
		LeaveType: domain.LeaveType(req.LeaveType),
		StartDate: datatypes.Date(startDate),
		EndDate:   datatypes.Date(endDate),
		Reason:    req.Reason,
		Status:    domain.LeavePending,
		AppliedAt: s.now(),
	}

	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

func (s *leaveService) GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Leave, error) {
	return s.leaveRepo.GetByEmployeeID(ctx, empID)
}

// Respond перезаписывает решение по заявке; повторный ответ допустим
func (s *leaveService) Respond(ctx context.Context, leaveID int64, query *dto.RespondLeaveQuery) (*domain.Leave, error) {
	leave, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	status := domain.LeaveStatus(query.Status)
	if err := s.leaveRepo.Respond(ctx, leaveID, status, query.AdminComment, now); err != nil {
		return nil, err
	}

	comment := query.AdminComment
	leave.Status = status
	leave.AdminComment = &comment
	leave.RespondedAt = &now
	return leave, nil
}
