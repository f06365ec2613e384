package repository

import (
	"context"
	"errors"
	"time"

	"github.com/monitoring-tool-api/internal/domain"
	"gorm.io/gorm"
)

// LoginActivityRepository определяет интерфейс для работы с сессиями входа
type LoginActivityRepository interface {
	Create(ctx context.Context, activity *domain.LoginActivity) error
	GetByID(ctx context.Context, id int64) (*domain.LoginActivity, error)
	SetLogoutTime(ctx context.Context, id int64, at time.Time) error
}

type loginActivityRepository struct {
	db *gorm.DB
}

// NewLoginActivityRepository создаёт новый экземпляр репозитория
func NewLoginActivityRepository(db *gorm.DB) LoginActivityRepository {
	return &loginActivityRepository{db: db}
}

func (r *loginActivityRepository) Create(ctx context.Context, activity *domain.LoginActivity) error {
	err := r.db.WithContext(ctx).Create(activity).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return domain.ErrEmployeeNotFound
	}
	return err
}

func (r *loginActivityRepository) GetByID(ctx context.Context, id int64) (*domain.LoginActivity, error) {
	var activity domain.LoginActivity
	err := r.db.WithContext(ctx).First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoginActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// SetLogoutTime перезаписывает время выхода; повторный выход допустим
func (r *loginActivityRepository) SetLogoutTime(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.LoginActivity{}).
		Where("activity_id = ?", id).
		Update("logout_time", at).Error
}
