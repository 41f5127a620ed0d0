package employee

import (
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	if r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries the only two fields the roster editor may
// change. Role and QR id are immutable from this view.
type UpdateEmployeeRequest struct {
	Name       string          `json:"name"`
	HourlyWage decimal.Decimal `json:"hourly_wage"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.HourlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	QRID       string `json:"qr_id"`
	HourlyWage string `json:"hourly_wage"`
	CreatedAt  string `json:"created_at"`
}
