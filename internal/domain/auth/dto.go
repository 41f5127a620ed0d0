package auth

import (
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
)

// User is the authenticated admin as reported by the backend.
type User struct {
	EmployeeID int64         `json:"employee_id"`
	Name       string        `json:"name"`
	Role       employee.Role `json:"role"`
}

type LoginRequest struct {
	QRID string `json:"qr_id"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QRID) {
		errs = append(errs, validator.ValidationError{
			Field:   "qr_id",
			Message: "qr_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	SessionToken string `json:"session_token"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

type SessionResponse struct {
	User User `json:"user"`
}
