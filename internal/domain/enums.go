package domain

// Gender - пол сотрудника
type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

// BloodGroup - группа крови сотрудника
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
)

// EmployeeStatus - статус сотрудника
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeInactive   EmployeeStatus = "inactive"
	EmployeeTerminated EmployeeStatus = "terminated"
	EmployeeOnLeave    EmployeeStatus = "onleave"
)

// LeaveType - вид отпуска
type LeaveType string

const (
	LeaveCasual LeaveType = "Casual"
	LeaveSick   LeaveType = "Sick"
	LeaveEarned LeaveType = "Earned"
	LeaveUnpaid LeaveType = "Unpaid"
)

// LeaveStatus - статус заявки на отпуск
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// TaskStatus - статус задачи
type TaskStatus string

const (
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)
