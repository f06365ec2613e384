package dto

import (
	"time"
)

// CreateEmployeeRequest - запрос на создание сотрудника.
// Обязательные строки - указатели: проверяется наличие поля, пустая строка допустима
type CreateEmployeeRequest struct {
	FullName     *string `json:"full_name" validate:"required,max=100"`
	Email        string  `json:"email" validate:"required,email,max=120"`
	Phone        *string `json:"phone" validate:"omitempty,max=15"`
	Gender       *string `json:"gender" validate:"omitempty,oneof=Male Female Other 'Prefer not to say'"`
	BloodGroup   *string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	PasswordHash *string `json:"password_hash" validate:"required,max=255"`
	Department   *string `json:"department" validate:"omitempty,max=100"`
	Designation  *string `json:"designation" validate:"omitempty,max=100"`
	JoinDate     *string `json:"join_date" validate:"omitempty,isodate"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive terminated onleave"`
}

// LoginRequest - запрос на фиксацию входа
type LoginRequest struct {
	EmpID      int64   `json:"emp_id" validate:"required,min=1"`
	IPAddress  *string `json:"ip_address" validate:"required,max=50"`
	DeviceInfo *string `json:"device_info" validate:"required,max=255"`
}

// ApplyLeaveRequest - заявка на отпуск. Статус из тела запроса не принимается
type ApplyLeaveRequest struct {
	EmpID     int64   `json:"emp_id" validate:"required,min=1"`
	LeaveType string  `json:"leave_type" validate:"required,oneof=Casual Sick Earned Unpaid"`
	StartDate string  `json:"start_date" validate:"required,isodate"`
	EndDate   string  `json:"end_date" validate:"required,isodate"`
	Reason    *string `json:"reason"`
}

// RespondLeaveQuery - параметры ответа администратора на заявку
type RespondLeaveQuery struct {
	Status       string `json:"status" validate:"required,oneof=pending approved rejected"`
	AdminComment string `json:"admin_comment"`
}

// AssignTaskRequest - запрос на назначение задачи
type AssignTaskRequest struct {
	EmpID       int64   `json:"emp_id" validate:"required,min=1"`
	Title       *string `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	AssignedBy  *string `json:"assigned_by" validate:"required,max=100"`
}

// UpdateTaskRequest - запрос на смену статуса задачи
type UpdateTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress review done"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// EmployeeCreatedResponse - ответ на создание сотрудника
type EmployeeCreatedResponse struct {
	Message    string `json:"message"`
	EmployeeID int64  `json:"employee_id"`
}

// LoginResponse - ответ на фиксацию входа
type LoginResponse struct {
	Message    string    `json:"message"`
	ActivityID int64     `json:"activity_id"`
	LoginTime  time.Time `json:"login_time"`
}

type LeaveAppliedResponse struct {
	Message string `json:"message"`
	LeaveID int64  `json:"leave_id"`
}

type TaskAssignedResponse struct {
	Message string `json:"message"`
	TaskID  int64  `json:"task_id"`
}

// EmployeeResponse - данные сотрудника. Хэш пароля не отдаётся
type EmployeeResponse struct {
	EmpID       int64     `json:"emp_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Gender      *string   `json:"gender"`
	BloodGroup  *string   `json:"blood_group"`
	Department  *string   `json:"department"`
	Designation *string   `json:"designation"`
	JoinDate    *string   `json:"join_date"`
	Status      *string   `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaveResponse - данные заявки на отпуск
type LeaveResponse struct {
	LeaveID      int64      `json:"leave_id"`
	EmpID        int64      `json:"emp_id"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Reason       *string    `json:"reason"`
	Status       string     `json:"status"`
	AdminComment *string    `json:"admin_comment"`
	AppliedAt    time.Time  `json:"applied_at"`
	RespondedAt  *time.Time `json:"responded_at"`
}

// TaskResponse - данные задачи
type TaskResponse struct {
	TaskID      int64     `json:"task_id"`
	EmpID       int64     `json:"emp_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	AssignedBy  string    `json:"assigned_by"`
	AssignedAt  time.Time `json:"assigned_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError - нарушенное правило валидации для поля
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
