package calendar

import "errors"

var (
	ErrSettingsNotFound = errors.New("calendar settings not found")
	ErrInvalidPeriod    = errors.New("invalid year/month")
	ErrHolidayExists    = errors.New("holiday already exists for this date")
	ErrHolidayNotFound  = errors.New("holiday not found")
)
