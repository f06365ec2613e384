package dto

import (
	"fmt"
	"time"
)

// DateLayout - формат дат в запросах и ответах
const DateLayout = "2006-01-02"

// localDateTimeLayout - дата со временем без часового пояса, дробные секунды необязательны
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	localDateTimeLayout,
	"2006-01-02 15:04:05.999999999",
}

// ParseDate принимает дату (2006-01-02), дату со временем (RFC 3339)
// или дату со временем без пояса (2006-01-02T15:04:05) и возвращает начало дня
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or ISO 8601 date-time", s)
}

// FormatDate форматирует дату для ответа
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
