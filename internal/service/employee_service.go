package service

import (
	"context"
	"strings"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/repository"
	"gorm.io/datatypes"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
	now     Clock
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, now Clock) EmployeeService {
	return &employeeService{
		empRepo: empRepo,
		now:     now,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	email := strings.TrimSpace(req.Email)

	exists, err := s.empRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	gender := domain.GenderPreferNotToSay
	if req.Gender != nil {
		gender = domain.Gender(*req.Gender)
	}

	status := domain.EmployeeActive
	if req.Status != nil {
		status = domain.EmployeeStatus(*req.Status)
	}

	emp := &domain.Employee{
		FullName:     strings.TrimSpace(deref(req.FullName)),
		Email:        email,
		Phone:        req.Phone,
		Gender:       &gender,
		PasswordHash: deref(req.PasswordHash),
		Department:   req.Department,
		Designation:  req.Designation,
		Status:       &status,
		CreatedAt:    s.now(),
	}

	if req.BloodGroup != nil {
		bloodGroup := domain.BloodGroup(*req.BloodGroup)
		emp.BloodGroup = &bloodGroup
	}

	// Парсим дату приёма, если передана
	if req.JoinDate != nil {
		joinDate, err := dto.ParseDate(*req.JoinDate)
		if err != nil {
			return nil, err
		}
		d := datatypes.Date(joinDate)
		emp.JoinDate = &d
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}
