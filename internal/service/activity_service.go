package service

import (
	"context"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/repository"
	"gorm.io/datatypes"
)

// ActivityService определяет интерфейс учёта входов и выходов сотрудников
type ActivityService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*domain.LoginActivity, error)
	Logout(ctx context.Context, activityID int64) (*domain.LoginActivity, error)
}

type activityService struct {
	activityRepo repository.LoginActivityRepository
	now          Clock
}

// NewActivityService создаёт новый экземпляр сервиса
func NewActivityService(activityRepo repository.LoginActivityRepository, now Clock) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		now:          now,
	}
}

// Login фиксирует вход. Существование сотрудника проверяет только внешний ключ в БД
func (s *activityService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.LoginActivity, error) {
	now := s.now()

	activity := &domain.LoginActivity{
		EmpID:      req.EmpID,
		LoginDate:  datatypes.Date(now),
		LoginTime:  now,
		IPAddress:  deref(req.IPAddress),
		DeviceInfo: deref(req.DeviceInfo),
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// Logout проставляет время выхода. Повторный вызов перезаписывает его
func (s *activityService) Logout(ctx context.Context, activityID int64) (*domain.LoginActivity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.activityRepo.SetLogoutTime(ctx, activityID, now); err != nil {
		return nil, err
	}

	activity.LogoutTime = &now
	return activity, nil
}
