package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrLoginActivityNotFound = errors.New("login activity not found")
	ErrLeaveNotFound         = errors.New("leave not found")
	ErrTaskNotFound          = errors.New("task not found")
)
