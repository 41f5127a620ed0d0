package response

import (
	"errors"
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/backend"
	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Backend reachability
	if errors.Is(err, backend.ErrUnavailable) {
		BadGateway(w, "Timekeeping backend unavailable")
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid QR code")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Session invalid or expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Session has been revoked")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, "Invalid employee role", nil)
	case errors.Is(err, employee.ErrNegativeWage):
		BadRequest(w, "Hourly wage must not be negative", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrBreakNotFound):
		NotFound(w, "Break log not found")
	case errors.Is(err, attendance.ErrPenaltyNotFound):
		NotFound(w, "Penalty not found")
	case errors.Is(err, attendance.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, attendance.ErrNotClockedOut):
		Conflict(w, "Attendance record has no clock-out")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Default
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			backendError(w, apiErr)
			return
		}
		InternalServerError(w, "An unexpected error occurred")
	}
}

// backendError relays an unmapped backend status without inventing a
// taxonomy: client-side statuses pass through as a bad request, the rest
// count as a failed upstream.
func backendError(w http.ResponseWriter, apiErr *backend.APIError) {
	if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		BadRequest(w, apiErr.Message, nil)
		return
	}
	BadGateway(w, apiErr.Message)
}
