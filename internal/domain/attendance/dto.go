package attendance

import (
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/aoncodev/timeclock-admin/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DETAIL DTOs
// ========================================

// EditClockRequest is a targeted update of a single clock field. The
// backend recomputes every derived total; the gateway refetches the full
// record afterwards instead of re-deriving anything locally.
type EditClockRequest struct {
	AttendanceID int64  `json:"attendance_id"`
	Field        string `json:"field"` // clock_in, clock_out
	Value        string `json:"value"` // datetime-local layout
}

func (r *EditClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AttendanceID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if !validator.IsInSlice(r.Field, []string{"clock_in", "clock_out"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of: clock_in, clock_out",
		})
	}

	if _, ok := validator.IsValidInputDateTime(r.Value); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be in YYYY-MM-DDTHH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EditBreakRequest struct {
	AttendanceID int64  `json:"attendance_id"`
	BreakID      int64  `json:"break_id"`
	Field        string `json:"field"` // break_start, break_end
	Value        string `json:"value"` // datetime-local layout
}

func (r *EditBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AttendanceID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if r.BreakID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_id",
			Message: "break_id is required",
		})
	}

	if !validator.IsInSlice(r.Field, []string{"break_start", "break_end"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "field",
			Message: "field must be one of: break_start, break_end",
		})
	}

	if _, ok := validator.IsValidInputDateTime(r.Value); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be in YYYY-MM-DDTHH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateBreakRequest struct {
	AttendanceID int64  `json:"attendance_id"`
	BreakType    string `json:"break_type"`
	BreakStart   string `json:"break_start"`
	BreakEnd     string `json:"break_end,omitempty"` // empty means an open break
}

func (r *CreateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AttendanceID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if !validator.IsInSlice(r.BreakType, []string{string(BreakEating), string(BreakRestroom), string(BreakPraying)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "break_type must be one of: eating, restroom, praying",
		})
	}

	start, startOK := validator.IsValidInputDateTime(r.BreakStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start must be in YYYY-MM-DDTHH:MM format",
		})
	}

	if r.BreakEnd != "" {
		end, endOK := validator.IsValidInputDateTime(r.BreakEnd)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be in YYYY-MM-DDTHH:MM format",
			})
		} else if startOK && !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be after break_start",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateAdjustmentRequest creates a penalty or a bonus on an attendance
// record, depending on the endpoint it is posted to.
type CreateAdjustmentRequest struct {
	AttendanceID int64           `json:"attendance_id"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AttendanceID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// ATTENDANCE HISTORY DTOs
// ========================================

type HistoryFilter struct {
	EmployeeID int64  `json:"employee_id"`
	Month      string `json:"month"` // "all" or 1-12
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if f.Month == "" {
		f.Month = "all" // Default month filter
	}
	if f.Month != "all" {
		validMonths := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
		if !validator.IsInSlice(f.Month, validMonths) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be all or a number between 1 and 12",
			})
		}
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.PerPage < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "per_page",
			Message: "per_page must be a positive number",
		})
	}
	if f.PerPage == 0 {
		f.PerPage = 10 // Default page size
	}
	if f.PerPage > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "per_page",
			Message: "per_page must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// VIEW MODELS
// ========================================

// ClockField is one editable timestamp as the dashboard renders it:
// Display feeds the read-only cell, Input pre-fills the datetime-local
// control when the field enters its editing state.
type ClockField struct {
	Display string `json:"display"`
	Input   string `json:"input"`
}

type BreakRow struct {
	ID         int64      `json:"id"`
	BreakType  string     `json:"break_type"`
	BreakStart ClockField `json:"break_start"`
	BreakEnd   ClockField `json:"break_end"`
	Total      string     `json:"total"` // HH:MM
}

type AdjustmentRow struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type DetailResponse struct {
	ID           int64      `json:"id"`
	Date         string     `json:"date"`
	EmployeeID   int64      `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	ClockIn      ClockField `json:"clock_in"`
	ClockOut     ClockField `json:"clock_out"`

	TotalBreaks string `json:"total_breaks"` // HH:MM
	TotalHours  string `json:"total_hours"`  // HH:MM, excluding breaks
	TotalWage   string `json:"total_wage"`   // currency-prefixed, zero decimals
	NetPay      string `json:"net_pay"`

	BreakLogs []BreakRow      `json:"break_logs"`
	Penalties []AdjustmentRow `json:"penalties"`
	Bonuses   []AdjustmentRow `json:"bonuses"`

	// Tasks assigned to the employee for this record's date.
	Tasks []task.TaskResponse `json:"tasks"`
}

// PatchEcho is what a mutation response alone can tell the view: the
// written field and the backend's recomputed working hours.
type PatchEcho struct {
	BreakLog   *BreakRow   `json:"break_log,omitempty"`
	ClockIn    *ClockField `json:"clock_in,omitempty"`
	ClockOut   *ClockField `json:"clock_out,omitempty"`
	TotalHours string      `json:"total_hours,omitempty"`
}

// MutationResult is returned by every write on the detail view. The
// write-then-refetch strategy: Refreshed true carries the full refetched
// record; Refreshed false means the write landed but the confirming
// refetch failed, so the view applies Patch locally and keeps its prior
// state for everything else.
type MutationResult struct {
	Refreshed bool            `json:"refreshed"`
	Detail    *DetailResponse `json:"detail,omitempty"`
	Patch     *PatchEcho      `json:"patch,omitempty"`
}

type HistoryRow struct {
	ID           int64    `json:"id"`
	Date         string   `json:"date"`
	EmployeeName string   `json:"employee_name"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     string   `json:"clock_out"`
	Breaks       []string `json:"breaks"` // "eating (12:00 - 12:30)" lines, sorted by start

	TotalBreaks              string `json:"total_breaks"`
	TotalHours               string `json:"total_hours"`
	TotalHoursExcludingBreak string `json:"total_hours_excluding_breaks"`
	TotalWage                string `json:"total_wage"`
}

type HistoryResponse struct {
	Records    []HistoryRow `json:"records"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
	TotalPages int          `json:"total_pages"`
	HasPrev    bool         `json:"has_prev"`
	HasNext    bool         `json:"has_next"`
}
