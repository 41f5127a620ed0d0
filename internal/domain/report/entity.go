package report

import (
	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
)

// Report is the backend's per-employee aggregate for a week: every
// attendance log in range with its nested breaks, penalties, bonuses and
// late record, plus the employee's tasks for the current date.
type Report struct {
	Name           string                  `json:"name"`
	AttendanceLogs []attendance.Attendance `json:"attendance_logs"`
	Tasks          []task.Task             `json:"tasks"`
}
