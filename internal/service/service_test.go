package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/monitoring-tool-api/internal/domain"
	"github.com/monitoring-tool-api/internal/dto"
	"github.com/monitoring-tool-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// stepClock возвращает время, сдвигающееся на минуту при каждом вызове
func stepClock() service.Clock {
	current := fixedNow
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func ptr[T any](v T) *T { return &v }

type fakeEmployeeRepository struct {
	createFn        func(ctx context.Context, emp *domain.Employee) error
	getByIDFn       func(ctx context.Context, id int64) (*domain.Employee, error)
	listFn          func(ctx context.Context) ([]domain.Employee, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email)
	}
	return false, nil
}

type fakeLoginActivityRepository struct {
	createFn        func(ctx context.Context, activity *domain.LoginActivity) error
	getByIDFn       func(ctx context.Context, id int64) (*domain.LoginActivity, error)
	setLogoutTimeFn func(ctx context.Context, id int64, at time.Time) error
}

func (f *fakeLoginActivityRepository) Create(ctx context.Context, activity *domain.LoginActivity) error {
	if f.createFn != nil {
		return f.createFn(ctx, activity)
	}
	return nil
}

func (f *fakeLoginActivityRepository) GetByID(ctx context.Context, id int64) (*domain.LoginActivity, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrLoginActivityNotFound
}

func (f *fakeLoginActivityRepository) SetLogoutTime(ctx context.Context, id int64, at time.Time) error {
	if f.setLogoutTimeFn != nil {
		return f.setLogoutTimeFn(ctx, id, at)
	}
	return nil
}

type fakeLeaveRepository struct {
	createFn          func(ctx context.Context, leave *domain.Leave) error
	getByIDFn         func(ctx context.Context, id int64) (*domain.Leave, error)
	getByEmployeeIDFn func(ctx context.Context, empID int64) ([]domain.Leave, error)
	respondFn         func(ctx context.Context, id int64, status domain.LeaveStatus, comment string, at time.Time) error
}

func (f *fakeLeaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, leave)
	}
	return nil
}

func (f *fakeLeaveRepository) GetByID(ctx context.Context, id int64) (*domain.Leave, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrLeaveNotFound
}

func (f *fakeLeaveRepository) GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Leave, error) {
	if f.getByEmployeeIDFn != nil {
		return f.getByEmployeeIDFn(ctx, empID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Respond(ctx context.Context, id int64, status domain.LeaveStatus, comment string, at time.Time) error {
	if f.respondFn != nil {
		return f.respondFn(ctx, id, status, comment, at)
	}
	return nil
}

type fakeTaskRepository struct {
	createFn          func(ctx context.Context, task *domain.Task) error
	getByIDFn         func(ctx context.Context, id int64) (*domain.Task, error)
	getByEmployeeIDFn func(ctx context.Context, empID int64) ([]domain.Task, error)
	updateStatusFn    func(ctx context.Context, id int64, status domain.TaskStatus, at time.Time) error
}

func (f *fakeTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if f.createFn != nil {
		return f.createFn(ctx, task)
	}
	return nil
}

func (f *fakeTaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrTaskNotFound
}

func (f *fakeTaskRepository) GetByEmployeeID(ctx context.Context, empID int64) ([]domain.Task, error) {
	if f.getByEmployeeIDFn != nil {
		return f.getByEmployeeIDFn(ctx, empID)
	}
	return nil, nil
}

func (f *fakeTaskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus, at time.Time) error {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status, at)
	}
	return nil
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		var created *domain.Employee
		repo := &fakeEmployeeRepository{
			createFn: func(ctx context.Context, emp *domain.Employee) error {
				emp.EmpID = 1
				created = emp
				return nil
			},
		}
		svc := service.NewEmployeeService(repo, fixedClock)

		emp, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
			FullName:     ptr(" A "),
			Email:        "a@x.com",
			PasswordHash: ptr("h"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), emp.EmpID)
		assert.Equal(t, "A", created.FullName)
		assert.Equal(t, domain.GenderPreferNotToSay, *created.Gender)
		assert.Equal(t, domain.EmployeeActive, *created.Status)
		assert.Nil(t, created.BloodGroup)
		assert.Nil(t, created.JoinDate)
		assert.Equal(t, fixedNow, created.CreatedAt)
	})

	t.Run("keeps supplied values", func(t *testing.T) {
		svc := service.NewEmployeeService(&fakeEmployeeRepository{}, fixedClock)

		emp, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
			FullName:     ptr("B"),
			Email:        "b@x.com",
			PasswordHash: ptr("h"),
			Gender:       ptr("Female"),
			BloodGroup:   ptr("AB-"),
			Status:       ptr("onleave"),
			JoinDate:     ptr("2023-09-01T10:00:00Z"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.GenderFemale, *emp.Gender)
		assert.Equal(t, domain.BloodGroupABNeg, *emp.BloodGroup)
		assert.Equal(t, domain.EmployeeOnLeave, *emp.Status)
		require.NotNil(t, emp.JoinDate)
		assert.Equal(t, "2023-09-01", dto.FormatDate(time.Time(*emp.JoinDate)))
	})

	t.Run("duplicate email", func(t *testing.T) {
		createCalled := false
		repo := &fakeEmployeeRepository{
			existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
				return email == "a@x.com", nil
			},
			createFn: func(ctx context.Context, emp *domain.Employee) error {
				createCalled = true
				return nil
			},
		}
		svc := service.NewEmployeeService(repo, fixedClock)

		_, err := svc.Create(ctx, &dto.CreateEmployeeRequest{FullName: ptr("A"), Email: "a@x.com", PasswordHash: ptr("h")})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.False(t, createCalled)
	})

	t.Run("lookup error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		repo := &fakeEmployeeRepository{
			existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
				return false, dbErr
			},
		}
		svc := service.NewEmployeeService(repo, fixedClock)

		_, err := svc.Create(ctx, &dto.CreateEmployeeRequest{FullName: ptr("A"), Email: "a@x.com", PasswordHash: ptr("h")})
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("invalid join date", func(t *testing.T) {
		svc := service.NewEmployeeService(&fakeEmployeeRepository{}, fixedClock)

		_, err := svc.Create(ctx, &dto.CreateEmployeeRequest{
			FullName: ptr("A"), Email: "a@x.com", PasswordHash: ptr("h"), JoinDate: ptr("yesterday"),
		})
		assert.Error(t, err)
	})
}

func TestEmployeeService_List(t *testing.T) {
	repo := &fakeEmployeeRepository{
		listFn: func(ctx context.Context) ([]domain.Employee, error) {
			return []domain.Employee{{EmpID: 1}, {EmpID: 2}}, nil
		},
	}
	svc := service.NewEmployeeService(repo, fixedClock)

	employees, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestActivityService_Login(t *testing.T) {
	repo := &fakeLoginActivityRepository{
		createFn: func(ctx context.Context, activity *domain.LoginActivity) error {
			activity.ActivityID = 7
			return nil
		},
	}
	svc := service.NewActivityService(repo, fixedClock)

	activity, err := svc.Login(context.Background(), &dto.LoginRequest{
		EmpID: 3, IPAddress: ptr("10.0.0.1"), DeviceInfo: ptr("laptop"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), activity.ActivityID)
	assert.Equal(t, int64(3), activity.EmpID)
	assert.Equal(t, fixedNow, activity.LoginTime)
	assert.Equal(t, "2024-05-01", dto.FormatDate(time.Time(activity.LoginDate)))
	assert.Nil(t, activity.LogoutTime)
}

func TestActivityService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc := service.NewActivityService(&fakeLoginActivityRepository{}, fixedClock)

		_, err := svc.Logout(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrLoginActivityNotFound)
	})

	t.Run("sets logout after login", func(t *testing.T) {
		clock := stepClock()
		stored := map[int64]*domain.LoginActivity{}
		repo := &fakeLoginActivityRepository{
			createFn: func(ctx context.Context, activity *domain.LoginActivity) error {
				activity.ActivityID = 1
				stored[1] = activity
				return nil
			},
			getByIDFn: func(ctx context.Context, id int64) (*domain.LoginActivity, error) {
				return stored[id], nil
			},
		}
		svc := service.NewActivityService(repo, clock)

		login, err := svc.Login(ctx, &dto.LoginRequest{EmpID: 1, IPAddress: ptr("ip"), DeviceInfo: ptr("dev")})
		require.NoError(t, err)

		logout, err := svc.Logout(ctx, login.ActivityID)
		require.NoError(t, err)
		require.NotNil(t, logout.LogoutTime)
		assert.False(t, logout.LogoutTime.Before(logout.LoginTime))
	})
}

func TestLeaveService_Apply(t *testing.T) {
	var created *domain.Leave
	repo := &fakeLeaveRepository{
		createFn: func(ctx context.Context, leave *domain.Leave) error {
			leave.LeaveID = 5
			created = leave
			return nil
		},
	}
	svc := service.NewLeaveService(repo, fixedClock)

	leave, err := svc.Apply(context.Background(), &dto.ApplyLeaveRequest{
		EmpID:     2,
		LeaveType: "Earned",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-05T00:00:00Z",
		Reason:    ptr("vacation"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), leave.LeaveID)
	assert.Equal(t, domain.LeavePending, created.Status)
	assert.Equal(t, domain.LeaveEarned, created.LeaveType)
	assert.Equal(t, "2024-06-05", dto.FormatDate(time.Time(created.EndDate)))
	assert.Equal(t, fixedNow, created.AppliedAt)
}

func TestLeaveService_Apply_InvalidDate(t *testing.T) {
	svc := service.NewLeaveService(&fakeLeaveRepository{}, fixedClock)

	_, err := svc.Apply(context.Background(), &dto.ApplyLeaveRequest{
		EmpID: 1, LeaveType: "Sick", StartDate: "2024-06-01", EndDate: "soon",
	})
	assert.Error(t, err)
}

func TestLeaveService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		respondCalled := false
		repo := &fakeLeaveRepository{
			respondFn: func(ctx context.Context, id int64, status domain.LeaveStatus, comment string, at time.Time) error {
				respondCalled = true
				return nil
			},
		}
		svc := service.NewLeaveService(repo, fixedClock)

		_, err := svc.Respond(ctx, 1, &dto.RespondLeaveQuery{Status: "approved"})
		assert.ErrorIs(t, err, domain.ErrLeaveNotFound)
		assert.False(t, respondCalled)
	})

	t.Run("overwrites previous decision", func(t *testing.T) {
		stored := &domain.Leave{LeaveID: 1, Status: domain.LeavePending}
		repo := &fakeLeaveRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Leave, error) {
				return stored, nil
			},
			respondFn: func(ctx context.Context, id int64, status domain.LeaveStatus, comment string, at time.Time) error {
				stored.Status = status
				stored.AdminComment = &comment
				stored.RespondedAt = &at
				return nil
			},
		}
		svc := service.NewLeaveService(repo, stepClock())

		first, err := svc.Respond(ctx, 1, &dto.RespondLeaveQuery{Status: "approved", AdminComment: "ok"})
		require.NoError(t, err)
		assert.Equal(t, domain.LeaveApproved, first.Status)
		firstAt := *first.RespondedAt

		second, err := svc.Respond(ctx, 1, &dto.RespondLeaveQuery{Status: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, domain.LeaveRejected, second.Status)
		assert.Equal(t, "", *second.AdminComment)
		assert.True(t, second.RespondedAt.After(firstAt))
	})
}

func TestTaskService_Assign(t *testing.T) {
	var created *domain.Task
	repo := &fakeTaskRepository{
		createFn: func(ctx context.Context, task *domain.Task) error {
			task.TaskID = 11
			created = task
			return nil
		},
	}
	svc := service.NewTaskService(repo, fixedClock)

	task, err := svc.Assign(context.Background(), &dto.AssignTaskRequest{
		EmpID: 1, Title: ptr("Report"), AssignedBy: ptr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), task.TaskID)
	assert.Equal(t, domain.TaskInProgress, created.Status)
	assert.Equal(t, fixedNow, created.AssignedAt)
	assert.Equal(t, created.AssignedAt, created.UpdatedAt)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc := service.NewTaskService(&fakeTaskRepository{}, fixedClock)

		_, err := svc.UpdateStatus(ctx, 1, &dto.UpdateTaskRequest{Status: "done"})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("advances updated_at", func(t *testing.T) {
		clock := stepClock()
		var stored *domain.Task
		repo := &fakeTaskRepository{
			createFn: func(ctx context.Context, task *domain.Task) error {
				task.TaskID = 1
				stored = task
				return nil
			},
			getByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				copied := *stored
				return &copied, nil
			},
		}
		svc := service.NewTaskService(repo, clock)

		assigned, err := svc.Assign(ctx, &dto.AssignTaskRequest{EmpID: 1, Title: ptr("t"), AssignedBy: ptr("a")})
		require.NoError(t, err)

		updated, err := svc.UpdateStatus(ctx, assigned.TaskID, &dto.UpdateTaskRequest{Status: "done"})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskDone, updated.Status)
		assert.True(t, updated.UpdatedAt.After(updated.AssignedAt))
	})

	t.Run("storage error", func(t *testing.T) {
		dbErr := errors.New("deadlock")
		repo := &fakeTaskRepository{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Task, error) {
				return &domain.Task{TaskID: id}, nil
			},
			updateStatusFn: func(ctx context.Context, id int64, status domain.TaskStatus, at time.Time) error {
				return dbErr
			},
		}
		svc := service.NewTaskService(repo, fixedClock)

		_, err := svc.UpdateStatus(ctx, 1, &dto.UpdateTaskRequest{Status: "review"})
		assert.ErrorIs(t, err, dbErr)
	})
}
