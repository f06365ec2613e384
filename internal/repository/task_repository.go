package repository

import (
	"context"
	"errors"
	"time"

	"github.com/monitoring-tool-api/internal/domain"
	"gorm.io/gorm"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus, at time.Time) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository создаёт новый экземпляр репозитория
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	err := r.db.WithContext(ctx).Create(task).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrEmployeeNotFound
	}
	return err
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Order("task_id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("task_id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"updated_at": at,
		}).Error
}
