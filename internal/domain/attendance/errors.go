package attendance

import "errors"

var (
	ErrRecordNotFound        = errors.New("attendance record not found")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must be after check-in")
)
