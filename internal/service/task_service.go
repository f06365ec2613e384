package service

import (
	"context"
	"strings"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/repository"
)

// TaskService определяет интерфейс бизнес-логики для задач
type TaskService interface {
	Assign(ctx context.Context, req *dto.AssignTaskRequest) (*domain.Task, error)
	UpdateStatus(ctx context.Context, taskID int64, req *dto.UpdateTaskRequest) (*domain.Task, error)
	GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Task, error)
}

type taskService struct {
	taskRepo repository.TaskRepository
	now      Clock
}

// NewTaskService создаёт новый экземпляр сервиса
func NewTaskService(taskRepo repository.TaskRepository, now Clock) TaskService {
	return &taskService{
		taskRepo: taskRepo,
		now:      now,
	}
}

// Assign создаёт задачу всегда в статусе in_progress
func (s *taskService) Assign(ctx context.Context, req *dto.AssignTaskRequest) (*domain.Task, error) {
	now := s.now()

	task := &domain.Task{
		EmpID:       req.EmpID,
		Title:       strings.TrimSpace(deref(req.Title)),
		Description: req.Description,
		Status:      domain.TaskInProgress,
		AssignedBy:  deref(req.AssignedBy),
		AssignedAt:  now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, taskID int64, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	status := domain.TaskStatus(req.Status)
	if err := s.taskRepo.UpdateStatus(ctx, taskID, status, now); err != nil {
		return nil, err
	}

	task.Status = status
	task.UpdatedAt = now
	return task, nil
}

func (s *taskService) GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Task, error) {
	return s.taskRepo.GetByEmployeeID(ctx, empID)
}
