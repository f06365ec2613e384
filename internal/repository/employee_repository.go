package repository

import (
	"context"
	"errors"

	"github.com/monitoring-tool-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := r.db.WithContext(ctx).Omit("Logins", "Leaves", "Tasks").Create(emp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// единственный уникальный индекс таблицы - email
		return domain.ErrEmailAlreadyExists
	}
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Order("emp_id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
