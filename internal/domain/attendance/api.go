package attendance

import (
	"context"
	"time"
)

// ========================================
// BACKEND WIRE SHAPES
// ========================================

// Timestamps sent to the backend are RFC 3339 with explicit offset; the
// service normalizes datetime-local form values before they reach here.

type EditClockPayload struct {
	AttendanceID int64   `json:"attendance_id"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
}

type EditBreakPayload struct {
	AttendanceID int64   `json:"attendance_id"`
	BreakID      int64   `json:"break_id"`
	BreakStart   *string `json:"break_start,omitempty"`
	BreakEnd     *string `json:"break_end,omitempty"`
}

type CreateBreakPayload struct {
	AttendanceID int64   `json:"attendance_id"`
	BreakType    string  `json:"break_type"`
	BreakStart   string  `json:"break_start"`
	BreakEnd     *string `json:"break_end,omitempty"`
}

type EditClockResult struct {
	AttendanceID int64      `json:"attendance_id"`
	ClockIn      *time.Time `json:"clock_in,omitempty"`
	ClockOut     *time.Time `json:"clock_out,omitempty"`
	TotalHours   float64    `json:"total_hours"`
}

type EditBreakResult struct {
	BreakLog   BreakLog `json:"break_log"`
	TotalHours float64  `json:"total_hours"`
}

type HistoryPayload struct {
	AttendanceRecords []Attendance `json:"attendance_records"`
	TotalPages        int          `json:"total_pages"`
}

// API is the slice of the remote timekeeping backend this domain consumes.
type API interface {
	Get(ctx context.Context, id int64) (*Attendance, error)
	EditClock(ctx context.Context, field string, payload EditClockPayload) (*EditClockResult, error)
	DeleteClockOut(ctx context.Context, attendanceID int64) error
	EditBreak(ctx context.Context, field string, payload EditBreakPayload) (*EditBreakResult, error)
	CreateBreak(ctx context.Context, payload CreateBreakPayload) (*BreakLog, error)
	DeleteBreak(ctx context.Context, breakID int64) error
	CreatePenalty(ctx context.Context, payload CreateAdjustmentRequest) (*Penalty, error)
	DeletePenalty(ctx context.Context, penaltyID int64) error
	CreateBonus(ctx context.Context, payload CreateAdjustmentRequest) (*Bonus, error)
	DeleteBonus(ctx context.Context, bonusID int64) error
	History(ctx context.Context, employeeID int64, month string, page, perPage int) (*HistoryPayload, error)
}
