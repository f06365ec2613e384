package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Employee представляет сотрудника
type Employee struct {
	EmpID        int64           `gorm:"column:emp_id;primaryKey;autoIncrement"`
	FullName     string          `gorm:"type:varchar(100)"`
	Email        string          `gorm:"type:varchar(120);uniqueIndex"`
	Phone        *string         `gorm:"type:varchar(15)"`
	Gender       *Gender         `gorm:"type:varchar(20)"`
	BloodGroup   *BloodGroup     `gorm:"type:varchar(3)"`
	PasswordHash string          `gorm:"type:varchar(255)"`
	Department   *string         `gorm:"type:varchar(100)"`
	Designation  *string         `gorm:"type:varchar(100)"`
	JoinDate     *datatypes.Date `gorm:"type:date"`
	Status       *EmployeeStatus `gorm:"type:varchar(20)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`

	Logins []LoginActivity `gorm:"foreignKey:EmpID;references:EmpID;constraint:OnDelete:CASCADE"`
	Leaves []Leave         `gorm:"foreignKey:EmpID;references:EmpID;constraint:OnDelete:CASCADE"`
	Tasks  []Task          `gorm:"foreignKey:EmpID;references:EmpID;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// LoginActivity - одна сессия сотрудника между входом и выходом
type LoginActivity struct {
	ActivityID int64          `gorm:"column:activity_id;primaryKey;autoIncrement"`
	EmpID      int64          `gorm:"column:emp_id;index"`
	LoginDate  datatypes.Date `gorm:"type:date"`
	LoginTime  time.Time
	LogoutTime *time.Time
	IPAddress  string `gorm:"column:ip_address;type:varchar(50)"`
	DeviceInfo string `gorm:"type:varchar(255)"`
}

// TableName задаёт имя таблицы для GORM
func (LoginActivity) TableName() string {
	return "login_activity"
}

// Leave - заявка на отпуск
type Leave struct {
	LeaveID      int64          `gorm:"column:leave_id;primaryKey;autoIncrement"`
	EmpID        int64          `gorm:"column:emp_id;index"`
	LeaveType    LeaveType      `gorm:"type:varchar(10)"`
	StartDate    datatypes.Date `gorm:"type:date"`
	EndDate      datatypes.Date `gorm:"type:date"`
	Reason       *string        `gorm:"type:text"`
	Status       LeaveStatus    `gorm:"type:varchar(10);default:pending"`
	AdminComment *string        `gorm:"type:text"`
	AppliedAt    time.Time      `gorm:"autoCreateTime"`
	RespondedAt  *time.Time
}

// TableName задаёт имя таблицы для GORM
func (Leave) TableName() string {
	return "leaves"
}

// Task - задача, назначенная сотруднику
type Task struct {
	TaskID      int64      `gorm:"column:task_id;primaryKey;autoIncrement"`
	EmpID       int64      `gorm:"column:emp_id;index"`
	Title       string     `gorm:"type:varchar(200)"`
	Description *string    `gorm:"type:text"`
	Status      TaskStatus `gorm:"type:varchar(12)"`
	AssignedBy  string     `gorm:"type:varchar(100)"`
	AssignedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Task) TableName() string {
	return "tasks"
}
