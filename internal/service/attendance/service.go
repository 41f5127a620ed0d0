package attendance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/aoncodev/timeclock-admin/internal/pkg/timefmt"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	api      attendance.API
	tasks    task.API
	location *time.Location
	currency string
}

// toWireTime normalizes a datetime-local form value to the RFC 3339
// timestamp the backend expects. The value was validated upstream.
func (a *AttendanceServiceImpl) toWireTime(value string) (string, error) {
	t, err := timefmt.ParseInput(value, a.location)
	if err != nil {
		return "", fmt.Errorf("failed to parse datetime value: %w", err)
	}
	return t.Format(time.RFC3339), nil
}

func (a *AttendanceServiceImpl) clockField(t *time.Time) attendance.ClockField {
	return attendance.ClockField{
		Display: timefmt.FormatForDisplay(t, a.location),
		Input:   timefmt.FormatForInput(t, a.location),
	}
}

func (a *AttendanceServiceImpl) money(d decimal.Decimal) string {
	return a.currency + d.StringFixed(0)
}

func (a *AttendanceServiceImpl) breakRow(log attendance.BreakLog) attendance.BreakRow {
	return attendance.BreakRow{
		ID:         log.ID,
		BreakType:  string(log.BreakType),
		BreakStart: a.clockField(&log.BreakStart),
		BreakEnd:   a.clockField(log.BreakEnd),
		Total:      timefmt.DecimalToTime(log.TotalBreakTime),
	}
}

func (a *AttendanceServiceImpl) toTaskResponse(tk task.Task) task.TaskResponse {
	completedAt := timefmt.DisplayPlaceholder
	if tk.CompletedAt != nil {
		completedAt = tk.CompletedAt.In(a.location).Format("2006-01-02 15:04")
	}

	return task.TaskResponse{
		ID:          tk.ID,
		Description: tk.Description,
		EmployeeID:  tk.EmployeeID,
		TaskDate:    tk.TaskDate,
		CompletedAt: completedAt,
		Status:      tk.Status,
	}
}

func (a *AttendanceServiceImpl) buildDetail(record *attendance.Attendance, tasks []task.Task) *attendance.DetailResponse {
	breaks := make([]attendance.BreakRow, 0, len(record.BreakLogs))
	logs := append([]attendance.BreakLog(nil), record.BreakLogs...)
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].BreakStart.Before(logs[j].BreakStart)
	})
	for _, log := range logs {
		breaks = append(breaks, a.breakRow(log))
	}

	penalties := make([]attendance.AdjustmentRow, 0, len(record.Penalties))
	for _, p := range record.Penalties {
		penalties = append(penalties, attendance.AdjustmentRow{
			ID:          p.ID,
			Description: p.Description,
			Price:       a.money(p.Price),
		})
	}

	bonuses := make([]attendance.AdjustmentRow, 0, len(record.Bonuses))
	for _, b := range record.Bonuses {
		bonuses = append(bonuses, attendance.AdjustmentRow{
			ID:          b.ID,
			Description: b.Description,
			Price:       a.money(b.Price),
		})
	}

	taskRows := make([]task.TaskResponse, 0, len(tasks))
	for _, tk := range tasks {
		taskRows = append(taskRows, a.toTaskResponse(tk))
	}

	return &attendance.DetailResponse{
		ID:           record.ID,
		Date:         timefmt.FormatDate(record.ClockIn, a.location),
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		ClockIn:      a.clockField(&record.ClockIn),
		ClockOut:     a.clockField(record.ClockOut),

		TotalBreaks: timefmt.DecimalToTime(record.TotalBreakTime),
		TotalHours:  timefmt.DecimalToTime(record.TotalHoursExcludingBreak),
		TotalWage:   a.money(record.TotalWage),
		NetPay:      a.money(record.NetPay),

		BreakLogs: breaks,
		Penalties: penalties,
		Bonuses:   bonuses,
		Tasks:     taskRows,
	}
}

func (a *AttendanceServiceImpl) fetchDetail(ctx context.Context, id int64) (*attendance.DetailResponse, error) {
	record, err := a.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	filter := task.TaskFilter{
		TaskDate:   timefmt.FormatDate(record.ClockIn, a.location),
		EmployeeID: &record.EmployeeID,
	}
	tasks, err := a.tasks.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}

	return a.buildDetail(record, tasks), nil
}

// refresh confirms a successful write by refetching the full record. A
// failed refetch is not an error: the write already landed, so the caller
// gets the mutation's own echo to patch the view with instead.
func (a *AttendanceServiceImpl) refresh(ctx context.Context, attendanceID int64, patch *attendance.PatchEcho) (*attendance.MutationResult, error) {
	detail, err := a.fetchDetail(ctx, attendanceID)
	if err != nil {
		return &attendance.MutationResult{Refreshed: false, Patch: patch}, nil
	}
	return &attendance.MutationResult{Refreshed: true, Detail: detail}, nil
}

// GetDetail implements attendance.Service.
func (a *AttendanceServiceImpl) GetDetail(ctx context.Context, id int64) (*attendance.DetailResponse, error) {
	if id <= 0 {
		return nil, attendance.ErrAttendanceNotFound
	}
	return a.fetchDetail(ctx, id)
}

// EditClock implements attendance.Service.
func (a *AttendanceServiceImpl) EditClock(ctx context.Context, req attendance.EditClockRequest) (*attendance.MutationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wire, err := a.toWireTime(req.Value)
	if err != nil {
		return nil, err
	}

	payload := attendance.EditClockPayload{AttendanceID: req.AttendanceID}
	if req.Field == "clock_in" {
		payload.ClockIn = &wire
	} else {
		payload.ClockOut = &wire
	}

	result, err := a.api.EditClock(ctx, req.Field, payload)
	if err != nil {
		return nil, err
	}

	patch := &attendance.PatchEcho{TotalHours: timefmt.DecimalToTime(result.TotalHours)}
	if result.ClockIn != nil {
		field := a.clockField(result.ClockIn)
		patch.ClockIn = &field
	}
	if result.ClockOut != nil {
		field := a.clockField(result.ClockOut)
		patch.ClockOut = &field
	}

	return a.refresh(ctx, req.AttendanceID, patch)
}

// DeleteClockOut implements attendance.Service. Clearing the clock-out
// reopens the session; derived totals reset on the backend.
func (a *AttendanceServiceImpl) DeleteClockOut(ctx context.Context, attendanceID int64) (*attendance.MutationResult, error) {
	if attendanceID <= 0 {
		return nil, attendance.ErrAttendanceNotFound
	}

	if err := a.api.DeleteClockOut(ctx, attendanceID); err != nil {
		return nil, err
	}

	cleared := a.clockField(nil)
	patch := &attendance.PatchEcho{ClockOut: &cleared}
	return a.refresh(ctx, attendanceID, patch)
}

// EditBreak implements attendance.Service.
func (a *AttendanceServiceImpl) EditBreak(ctx context.Context, req attendance.EditBreakRequest) (*attendance.MutationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	wire, err := a.toWireTime(req.Value)
	if err != nil {
		return nil, err
	}

	payload := attendance.EditBreakPayload{
		AttendanceID: req.AttendanceID,
		BreakID:      req.BreakID,
	}
	if req.Field == "break_start" {
		payload.BreakStart = &wire
	} else {
		payload.BreakEnd = &wire
	}

	result, err := a.api.EditBreak(ctx, req.Field, payload)
	if err != nil {
		return nil, err
	}

	row := a.breakRow(result.BreakLog)
	patch := &attendance.PatchEcho{
		BreakLog:   &row,
		TotalHours: timefmt.DecimalToTime(result.TotalHours),
	}
	return a.refresh(ctx, req.AttendanceID, patch)
}

// CreateBreak implements attendance.Service.
func (a *AttendanceServiceImpl) CreateBreak(ctx context.Context, req attendance.CreateBreakRequest) (*attendance.MutationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := a.toWireTime(req.BreakStart)
	if err != nil {
		return nil, err
	}

	payload := attendance.CreateBreakPayload{
		AttendanceID: req.AttendanceID,
		BreakType:    req.BreakType,
		BreakStart:   start,
	}
	if req.BreakEnd != "" {
		end, err := a.toWireTime(req.BreakEnd)
		if err != nil {
			return nil, err
		}
		payload.BreakEnd = &end
	}

	created, err := a.api.CreateBreak(ctx, payload)
	if err != nil {
		return nil, err
	}

	row := a.breakRow(*created)
	patch := &attendance.PatchEcho{BreakLog: &row}
	return a.refresh(ctx, req.AttendanceID, patch)
}

// DeleteBreak implements attendance.Service.
func (a *AttendanceServiceImpl) DeleteBreak(ctx context.Context, attendanceID, breakID int64) (*attendance.MutationResult, error) {
	if attendanceID <= 0 {
		return nil, attendance.ErrAttendanceNotFound
	}
	if breakID <= 0 {
		return nil, attendance.ErrBreakNotFound
	}

	if err := a.api.DeleteBreak(ctx, breakID); err != nil {
		return nil, err
	}
	return a.refresh(ctx, attendanceID, nil)
}

// CreatePenalty implements attendance.Service.
func (a *AttendanceServiceImpl) CreatePenalty(ctx context.Context, req attendance.CreateAdjustmentRequest) (*attendance.MutationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := a.api.CreatePenalty(ctx, req); err != nil {
		return nil, err
	}
	return a.refresh(ctx, req.AttendanceID, nil)
}

// DeletePenalty implements attendance.Service.
func (a *AttendanceServiceImpl) DeletePenalty(ctx context.Context, attendanceID, penaltyID int64) (*attendance.MutationResult, error) {
	if attendanceID <= 0 {
		return nil, attendance.ErrAttendanceNotFound
	}
	if penaltyID <= 0 {
		return nil, attendance.ErrPenaltyNotFound
	}

	if err := a.api.DeletePenalty(ctx, penaltyID); err != nil {
		return nil, err
	}
	return a.refresh(ctx, attendanceID, nil)
}

// CreateBonus implements attendance.Service.
func (a *AttendanceServiceImpl) CreateBonus(ctx context.Context, req attendance.CreateAdjustmentRequest) (*attendance.MutationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := a.api.CreateBonus(ctx, req); err != nil {
		return nil, err
	}
	return a.refresh(ctx, req.AttendanceID, nil)
}

// DeleteBonus implements attendance.Service.
func (a *AttendanceServiceImpl) DeleteBonus(ctx context.Context, attendanceID, bonusID int64) (*attendance.MutationResult, error) {
	if attendanceID <= 0 {
		return nil, attendance.ErrAttendanceNotFound
	}
	if bonusID <= 0 {
		return nil, attendance.ErrBonusNotFound
	}

	if err := a.api.DeleteBonus(ctx, bonusID); err != nil {
		return nil, err
	}
	return a.refresh(ctx, attendanceID, nil)
}

// History implements attendance.Service.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (*attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payload, err := a.api.History(ctx, filter.EmployeeID, filter.Month, filter.Page, filter.PerPage)
	if err != nil {
		return nil, err
	}

	records := make([]attendance.HistoryRow, 0, len(payload.AttendanceRecords))
	for _, record := range payload.AttendanceRecords {
		logs := append([]attendance.BreakLog(nil), record.BreakLogs...)
		sort.Slice(logs, func(i, j int) bool {
			return logs[i].BreakStart.Before(logs[j].BreakStart)
		})

		breaks := make([]string, 0, len(logs))
		for _, log := range logs {
			start := log.BreakStart
			breaks = append(breaks, fmt.Sprintf("%s (%s - %s)",
				log.BreakType,
				timefmt.FormatForDisplay(&start, a.location),
				timefmt.FormatForDisplay(log.BreakEnd, a.location),
			))
		}

		records = append(records, attendance.HistoryRow{
			ID:           record.ID,
			Date:         timefmt.FormatDate(record.ClockIn, a.location),
			EmployeeName: record.EmployeeName,
			ClockIn:      timefmt.FormatForDisplay(&record.ClockIn, a.location),
			ClockOut:     timefmt.FormatForDisplay(record.ClockOut, a.location),
			Breaks:       breaks,

			TotalBreaks:              timefmt.DecimalToTime(record.TotalBreakTime),
			TotalHours:               timefmt.DecimalToTime(record.TotalHours),
			TotalHoursExcludingBreak: timefmt.DecimalToTime(record.TotalHoursExcludingBreak),
			TotalWage:                a.money(record.TotalWage),
		})
	}

	return &attendance.HistoryResponse{
		Records:    records,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalPages: payload.TotalPages,
		HasPrev:    filter.Page > 1,
		HasNext:    filter.Page < payload.TotalPages,
	}, nil
}

func NewAttendanceService(
	api attendance.API,
	tasks task.API,
	location *time.Location,
	currency string,
) attendance.Service {
	return &AttendanceServiceImpl{
		api:      api,
		tasks:    tasks,
		location: location,
		currency: currency,
	}
}
