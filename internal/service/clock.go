package service

import "time"

// Clock возвращает текущее время; подменяется в тестах
type Clock func() time.Time

// deref возвращает значение строки или пустую строку для nil
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
