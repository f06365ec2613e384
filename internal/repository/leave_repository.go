package repository

import (
	"context"
	"errors"
	"time"

	"github.com/monitoring-tool-api/internal/domain"
	"gorm.io/gorm"
)

// LeaveRepository определяет интерфейс для работы с заявками на отпуск
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) error
	GetByID(ctx context.Context, id int64) (*domain.Leave, error)
	GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Leave, error)
	Respond(ctx context.Context, id int64, status domain.LeaveStatus, comment string, at time.Time) error
}

type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository создаёт новый экземпляр репозитория
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	err := r.db.WithContext(ctx).Create(leave).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrEmployeeNotFound
	}
	return err
}

func (r *leaveRepository) GetByID(ctx context.Context, id int64) (*domain.Leave, error) {
	var leave domain.Leave
	err := r.db.WithContext(ctx).First(&leave, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Leave, error) {
	var leaves []domain.Leave
	err := r.db.WithContext(ctx).
		Where("emp_id = ?", empID).
		Order("leave_id ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) Respond(ctx context.Context, id int64, status domain.LeaveStatus, comment string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Leave{}).
		Where("leave_id = ?", id).
		Updates(map[string]any{
			"status":        status,
			"admin_comment": comment,
			"responded_at":  at,
		}).Error
}
