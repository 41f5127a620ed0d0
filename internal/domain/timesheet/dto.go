package timesheet

import (
	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
)

// EmployeeStatus is one entry of the backend's employees-status payload
// for a date. Attendance is nil when the employee did not clock in; such
// entries are filtered out of the rendered timesheet.
type EmployeeStatus struct {
	Employee                 employee.Employee      `json:"employee"`
	Attendance               *attendance.Attendance `json:"attendance"`
	Breaks                   []attendance.BreakLog  `json:"breaks"`
	TotalBreakTime           float64                `json:"total_break_time"`
	TotalHoursExcludingBreak float64                `json:"total_hours_excluding_breaks"`
}

type StatusPayload struct {
	Employees []EmployeeStatus `json:"employees"`
}

type Filter struct {
	Date string `json:"date"` // defaults to today in the display timezone
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Row struct {
	EmployeeID int64    `json:"employee_id"`
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	ClockIn    string   `json:"clock_in"`
	ClockOut   string   `json:"clock_out"`
	Breaks     []string `json:"breaks"` // "eating - 00:30" lines
	TotalBreak string   `json:"total_break"`
	TotalHours string   `json:"total_hours"`

	// TotalWage is the backend-provided figure; the gateway never
	// re-derives wage from hours and rate.
	TotalWage string `json:"total_wage"`
}

type Response struct {
	Date string `json:"date"`
	Rows []Row  `json:"rows"`
}
