package task

import (
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Description string `json:"description"`
	TaskDate    string `json:"task_date"` // YYYY-MM-DD
	EmployeeID  int64  `json:"employee_id"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if _, ok := validator.IsValidDate(r.TaskDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "task_date",
			Message: "task_date must be in YYYY-MM-DD format",
		})
	}

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskFilter struct {
	TaskDate   string `json:"task_date"`             // defaults to today in the display timezone
	EmployeeID *int64 `json:"employee_id,omitempty"` // nil means all employees
}

func (f *TaskFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.TaskDate != "" {
		if _, ok := validator.IsValidDate(f.TaskDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "task_date",
				Message: "task_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EmployeeID != nil && *f.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TaskResponse struct {
	ID           int64  `json:"id"`
	Description  string `json:"description"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	TaskDate     string `json:"task_date"`
	CompletedAt  string `json:"completed_at"` // "-" until completed
	Status       bool   `json:"status"`
}
