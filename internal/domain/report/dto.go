package report

import (
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
)

type WeekRequest struct {
	EmployeeID   int64  `json:"employee_id"`
	StartDate    string `json:"start_date"`    // Monday, YYYY-MM-DD
	SelectedDate string `json:"selected_date"` // defaults to StartDate
}

func (r *WeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	} else if start.Weekday() != time.Monday {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a Monday",
		})
	}

	if r.SelectedDate == "" {
		r.SelectedDate = r.StartDate // Default selection
	} else if _, ok := validator.IsValidDate(r.SelectedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_date",
			Message: "selected_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayCell is one column of the Mon-Sun calendar grid. HasLog false means
// the empty-state cell; every other field is then zero-valued.
type DayCell struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Weekday string `json:"weekday"`

	HasLog       bool   `json:"has_log"`
	AttendanceID int64  `json:"attendance_id,omitempty"`
	ClockIn      string `json:"clock_in,omitempty"`
	ClockOut     string `json:"clock_out,omitempty"`

	BreakCount   int `json:"break_count"`
	BreakMinutes int `json:"break_minutes"`
	LateMinutes  int `json:"late_minutes"`

	TotalPenalty string `json:"total_penalty"`
	TotalBonus   string `json:"total_bonus"`
	NetPay       string `json:"net_pay"`
}

type TaskItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// TasksPanel renders tasks only when the selected calendar day is the
// real-world today. More than one task splits into two columns.
type TasksPanel struct {
	Visible bool       `json:"visible"`
	Left    []TaskItem `json:"left"`
	Right   []TaskItem `json:"right"`
}

type WeekResponse struct {
	EmployeeName string `json:"employee_name"`
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`

	Days []DayCell `json:"days"` // always 7 entries, Monday first

	SelectedDate string                     `json:"selected_date"`
	Tasks        TasksPanel                 `json:"tasks"`
	Penalties    []attendance.AdjustmentRow `json:"penalties"` // for the selected day
}
