package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one employee's clock-in/out session for a day, with
// nested breaks, penalties and bonuses. All derived totals (hours, wage,
// net pay) are computed by the backend; the gateway only displays them.
type Attendance struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	ClockIn      time.Time  `json:"clock_in"`
	ClockOut     *time.Time `json:"clock_out"`

	BreakLogs  []BreakLog  `json:"break_logs"`
	Penalties  []Penalty   `json:"penalties"`
	Bonuses    []Bonus     `json:"bonuses"`
	LateRecord *LateRecord `json:"late_record"`

	TotalHours               float64         `json:"total_hours"`
	TotalHoursExcludingBreak float64         `json:"total_hours_excluding_breaks"`
	TotalBreakTime           float64         `json:"total_break_time"`
	TotalWage                decimal.Decimal `json:"total_wage"`
	TotalPenalties           decimal.Decimal `json:"total_penalties"`
	TotalBonus               decimal.Decimal `json:"total_bonus"`
	TotalLatePrice           decimal.Decimal `json:"total_late_price"`
	NetPay                   decimal.Decimal `json:"net_pay"`

	HasClockedOut bool `json:"has_clocked_out"`
}

// BreakLog is a timed pause within an attendance session. A nil BreakEnd
// means the break is still open; TotalBreakTime is decimal hours.
type BreakLog struct {
	ID             int64      `json:"id"`
	AttendanceID   int64      `json:"attendance_id"`
	BreakType      BreakType  `json:"break_type"`
	BreakStart     time.Time  `json:"break_start"`
	BreakEnd       *time.Time `json:"break_end"`
	TotalBreakTime float64    `json:"total_break_time"`
}

type BreakType string

const (
	BreakEating   BreakType = "eating"
	BreakRestroom BreakType = "restroom"
	BreakPraying  BreakType = "praying"
)

type Penalty struct {
	ID           int64           `json:"id"`
	AttendanceID int64           `json:"attendance_id"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
}

type Bonus struct {
	ID           int64           `json:"id"`
	AttendanceID int64           `json:"attendance_id"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
}

// LateRecord is the backend-computed late clock-in flag for a session.
type LateRecord struct {
	ID                  int64           `json:"id"`
	AttendanceID        int64           `json:"attendance_id"`
	LateDurationMinutes int             `json:"late_duration_minutes"`
	LatePrice           decimal.Decimal `json:"late_price"`
}
