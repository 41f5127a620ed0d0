package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrBreakNotFound      = errors.New("break log not found")
	ErrPenaltyNotFound    = errors.New("penalty not found")
	ErrBonusNotFound      = errors.New("bonus not found")
	ErrNotClockedOut      = errors.New("attendance record has no clock-out to delete")
	ErrClockOutBeforeIn   = errors.New("clock-out must be after clock-in")
)
