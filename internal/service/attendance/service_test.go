package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocation = time.FixedZone("KST", 9*60*60)

const testCurrency = "₩"

type fakeAttendanceAPI struct {
	getFn            func(ctx context.Context, id int64) (*attendance.Attendance, error)
	editClockFn      func(ctx context.Context, field string, payload attendance.EditClockPayload) (*attendance.EditClockResult, error)
	deleteClockOutFn func(ctx context.Context, attendanceID int64) error
	editBreakFn      func(ctx context.Context, field string, payload attendance.EditBreakPayload) (*attendance.EditBreakResult, error)
	createBreakFn    func(ctx context.Context, payload attendance.CreateBreakPayload) (*attendance.BreakLog, error)
	deleteBreakFn    func(ctx context.Context, breakID int64) error
	createPenaltyFn  func(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Penalty, error)
	deletePenaltyFn  func(ctx context.Context, penaltyID int64) error
	createBonusFn    func(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Bonus, error)
	deleteBonusFn    func(ctx context.Context, bonusID int64) error
	historyFn        func(ctx context.Context, employeeID int64, month string, page, perPage int) (*attendance.HistoryPayload, error)
}

func (f *fakeAttendanceAPI) Get(ctx context.Context, id int64) (*attendance.Attendance, error) {
	return f.getFn(ctx, id)
}

func (f *fakeAttendanceAPI) EditClock(ctx context.Context, field string, payload attendance.EditClockPayload) (*attendance.EditClockResult, error) {
	return f.editClockFn(ctx, field, payload)
}

func (f *fakeAttendanceAPI) DeleteClockOut(ctx context.Context, attendanceID int64) error {
	return f.deleteClockOutFn(ctx, attendanceID)
}

func (f *fakeAttendanceAPI) EditBreak(ctx context.Context, field string, payload attendance.EditBreakPayload) (*attendance.EditBreakResult, error) {
	return f.editBreakFn(ctx, field, payload)
}

func (f *fakeAttendanceAPI) CreateBreak(ctx context.Context, payload attendance.CreateBreakPayload) (*attendance.BreakLog, error) {
	return f.createBreakFn(ctx, payload)
}

func (f *fakeAttendanceAPI) DeleteBreak(ctx context.Context, breakID int64) error {
	return f.deleteBreakFn(ctx, breakID)
}

func (f *fakeAttendanceAPI) CreatePenalty(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Penalty, error) {
	return f.createPenaltyFn(ctx, payload)
}

func (f *fakeAttendanceAPI) DeletePenalty(ctx context.Context, penaltyID int64) error {
	return f.deletePenaltyFn(ctx, penaltyID)
}

func (f *fakeAttendanceAPI) CreateBonus(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Bonus, error) {
	return f.createBonusFn(ctx, payload)
}

func (f *fakeAttendanceAPI) DeleteBonus(ctx context.Context, bonusID int64) error {
	return f.deleteBonusFn(ctx, bonusID)
}

func (f *fakeAttendanceAPI) History(ctx context.Context, employeeID int64, month string, page, perPage int) (*attendance.HistoryPayload, error) {
	return f.historyFn(ctx, employeeID, month, page, perPage)
}

type fakeTaskAPI struct {
	filterFn func(ctx context.Context, filter task.TaskFilter) ([]task.Task, error)
}

func (f *fakeTaskAPI) Filter(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	if f.filterFn == nil {
		return nil, nil
	}
	return f.filterFn(ctx, filter)
}

func (f *fakeTaskAPI) Create(ctx context.Context, req task.CreateTaskRequest) (*task.Task, error) {
	panic("not expected")
}

func (f *fakeTaskAPI) Toggle(ctx context.Context, id int64) (*task.Task, error) {
	panic("not expected")
}

func (f *fakeTaskAPI) Delete(ctx context.Context, id int64) error {
	panic("not expected")
}

// testRecord is a closed session: 09:00-18:00 KST with a one-hour break.
func testRecord() *attendance.Attendance {
	clockIn := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)  // 09:00 KST
	clockOut := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC) // 18:00 KST
	breakEnd := clockIn.Add(4 * time.Hour)

	return &attendance.Attendance{
		ID:           42,
		EmployeeID:   7,
		EmployeeName: "Jane",
		ClockIn:      clockIn,
		ClockOut:     &clockOut,
		BreakLogs: []attendance.BreakLog{
			{
				ID:             11,
				AttendanceID:   42,
				BreakType:      attendance.BreakEating,
				BreakStart:     clockIn.Add(3 * time.Hour),
				BreakEnd:       &breakEnd,
				TotalBreakTime: 1.0,
			},
		},
		Penalties: []attendance.Penalty{
			{ID: 21, AttendanceID: 42, Description: "late", Price: decimal.NewFromInt(5000)},
		},
		Bonuses:                  []attendance.Bonus{},
		TotalHours:               9.0,
		TotalHoursExcludingBreak: 8.0,
		TotalBreakTime:           1.0,
		TotalWage:                decimal.NewFromInt(80000),
		NetPay:                   decimal.NewFromInt(75000),
		HasClockedOut:            true,
	}
}

func newTestService(api *fakeAttendanceAPI, tasks *fakeTaskAPI) attendance.Service {
	if tasks == nil {
		tasks = &fakeTaskAPI{}
	}
	return NewAttendanceService(api, tasks, testLocation, testCurrency)
}

func TestAttendanceService_GetDetail_RendersViewModel(t *testing.T) {
	api := &fakeAttendanceAPI{
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			assert.Equal(t, int64(42), id)
			return testRecord(), nil
		},
	}
	tasks := &fakeTaskAPI{
		filterFn: func(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
			assert.Equal(t, "2025-03-03", filter.TaskDate)
			require.NotNil(t, filter.EmployeeID)
			assert.Equal(t, int64(7), *filter.EmployeeID)
			return []task.Task{
				{ID: 1, Description: "prep", EmployeeID: 7, TaskDate: "2025-03-03"},
			}, nil
		},
	}

	detail, err := newTestService(api, tasks).GetDetail(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", detail.Date)
	assert.Equal(t, "Jane", detail.EmployeeName)
	assert.Equal(t, "09:00", detail.ClockIn.Display)
	assert.Equal(t, "2025-03-03T09:00", detail.ClockIn.Input)
	assert.Equal(t, "18:00", detail.ClockOut.Display)

	assert.Equal(t, "01:00", detail.TotalBreaks)
	assert.Equal(t, "08:00", detail.TotalHours)
	assert.Equal(t, "₩80000", detail.TotalWage)
	assert.Equal(t, "₩75000", detail.NetPay)

	require.Len(t, detail.BreakLogs, 1)
	assert.Equal(t, "eating", detail.BreakLogs[0].BreakType)
	assert.Equal(t, "12:00", detail.BreakLogs[0].BreakStart.Display)
	assert.Equal(t, "13:00", detail.BreakLogs[0].BreakEnd.Display)
	assert.Equal(t, "01:00", detail.BreakLogs[0].Total)

	require.Len(t, detail.Penalties, 1)
	assert.Equal(t, "₩5000", detail.Penalties[0].Price)
	assert.Empty(t, detail.Bonuses)

	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, "-", detail.Tasks[0].CompletedAt)
}

func TestAttendanceService_GetDetail_OpenSession(t *testing.T) {
	record := testRecord()
	record.ClockOut = nil
	record.HasClockedOut = false

	api := &fakeAttendanceAPI{
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return record, nil
		},
	}

	detail, err := newTestService(api, nil).GetDetail(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "-", detail.ClockOut.Display)
	assert.Equal(t, "", detail.ClockOut.Input)
}

func TestAttendanceService_GetDetail_SortsBreaksByStart(t *testing.T) {
	record := testRecord()
	later := record.BreakLogs[0]
	earlier := later
	earlier.ID = 12
	earlier.BreakStart = later.BreakStart.Add(-2 * time.Hour)
	record.BreakLogs = []attendance.BreakLog{later, earlier}

	api := &fakeAttendanceAPI{
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return record, nil
		},
	}

	detail, err := newTestService(api, nil).GetDetail(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, detail.BreakLogs, 2)
	assert.Equal(t, int64(12), detail.BreakLogs[0].ID)
	assert.Equal(t, int64(11), detail.BreakLogs[1].ID)
}

func TestAttendanceService_GetDetail_NotFound(t *testing.T) {
	api := &fakeAttendanceAPI{
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return nil, attendance.ErrAttendanceNotFound
		},
	}

	_, err := newTestService(api, nil).GetDetail(context.Background(), 42)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_EditClock_RefetchesDetail(t *testing.T) {
	var sentPayload attendance.EditClockPayload
	api := &fakeAttendanceAPI{
		editClockFn: func(ctx context.Context, field string, payload attendance.EditClockPayload) (*attendance.EditClockResult, error) {
			assert.Equal(t, "clock_in", field)
			sentPayload = payload
			in := time.Date(2025, 3, 3, 0, 30, 0, 0, time.UTC)
			return &attendance.EditClockResult{AttendanceID: 42, ClockIn: &in, TotalHours: 7.5}, nil
		},
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return testRecord(), nil
		},
	}

	result, err := newTestService(api, nil).EditClock(context.Background(), attendance.EditClockRequest{
		AttendanceID: 42,
		Field:        "clock_in",
		Value:        "2025-03-03T09:30",
	})
	require.NoError(t, err)

	require.NotNil(t, sentPayload.ClockIn)
	assert.Equal(t, "2025-03-03T09:30:00+09:00", *sentPayload.ClockIn)
	assert.Nil(t, sentPayload.ClockOut)

	assert.True(t, result.Refreshed)
	require.NotNil(t, result.Detail)
	assert.Nil(t, result.Patch)
}

func TestAttendanceService_EditClock_RefetchFailureFallsBackToPatch(t *testing.T) {
	api := &fakeAttendanceAPI{
		editClockFn: func(ctx context.Context, field string, payload attendance.EditClockPayload) (*attendance.EditClockResult, error) {
			out := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC) // 19:00 KST
			return &attendance.EditClockResult{AttendanceID: 42, ClockOut: &out, TotalHours: 7.99}, nil
		},
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return nil, errors.New("backend unavailable")
		},
	}

	result, err := newTestService(api, nil).EditClock(context.Background(), attendance.EditClockRequest{
		AttendanceID: 42,
		Field:        "clock_out",
		Value:        "2025-03-03T19:00",
	})
	require.NoError(t, err)

	assert.False(t, result.Refreshed)
	assert.Nil(t, result.Detail)
	require.NotNil(t, result.Patch)
	require.NotNil(t, result.Patch.ClockOut)
	assert.Equal(t, "19:00", result.Patch.ClockOut.Display)
	assert.Equal(t, "07:59", result.Patch.TotalHours)
}

func TestAttendanceService_EditClock_InvalidField(t *testing.T) {
	_, err := newTestService(&fakeAttendanceAPI{}, nil).EditClock(context.Background(), attendance.EditClockRequest{
		AttendanceID: 42,
		Field:        "lunch",
		Value:        "2025-03-03T09:30",
	})
	assert.Error(t, err)
}

func TestAttendanceService_DeleteClockOut_PatchClearsField(t *testing.T) {
	api := &fakeAttendanceAPI{
		deleteClockOutFn: func(ctx context.Context, attendanceID int64) error {
			assert.Equal(t, int64(42), attendanceID)
			return nil
		},
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return nil, errors.New("backend unavailable")
		},
	}

	result, err := newTestService(api, nil).DeleteClockOut(context.Background(), 42)
	require.NoError(t, err)

	assert.False(t, result.Refreshed)
	require.NotNil(t, result.Patch)
	require.NotNil(t, result.Patch.ClockOut)
	assert.Equal(t, "-", result.Patch.ClockOut.Display)
	assert.Equal(t, "", result.Patch.ClockOut.Input)
}

func TestAttendanceService_EditBreak_PatchEchoesBreakRow(t *testing.T) {
	record := testRecord()
	api := &fakeAttendanceAPI{
		editBreakFn: func(ctx context.Context, field string, payload attendance.EditBreakPayload) (*attendance.EditBreakResult, error) {
			assert.Equal(t, "break_end", field)
			assert.Equal(t, int64(11), payload.BreakID)
			require.NotNil(t, payload.BreakEnd)
			return &attendance.EditBreakResult{BreakLog: record.BreakLogs[0], TotalHours: 8.0}, nil
		},
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return nil, errors.New("backend unavailable")
		},
	}

	result, err := newTestService(api, nil).EditBreak(context.Background(), attendance.EditBreakRequest{
		AttendanceID: 42,
		BreakID:      11,
		Field:        "break_end",
		Value:        "2025-03-03T13:30",
	})
	require.NoError(t, err)

	assert.False(t, result.Refreshed)
	require.NotNil(t, result.Patch)
	require.NotNil(t, result.Patch.BreakLog)
	assert.Equal(t, int64(11), result.Patch.BreakLog.ID)
	assert.Equal(t, "08:00", result.Patch.TotalHours)
}

func TestAttendanceService_CreateBreak_OpenEndedOmitsEnd(t *testing.T) {
	var sentPayload attendance.CreateBreakPayload
	api := &fakeAttendanceAPI{
		createBreakFn: func(ctx context.Context, payload attendance.CreateBreakPayload) (*attendance.BreakLog, error) {
			sentPayload = payload
			return &attendance.BreakLog{ID: 99, AttendanceID: 42, BreakType: attendance.BreakRestroom,
				BreakStart: time.Date(2025, 3, 3, 5, 0, 0, 0, time.UTC)}, nil
		},
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return testRecord(), nil
		},
	}

	result, err := newTestService(api, nil).CreateBreak(context.Background(), attendance.CreateBreakRequest{
		AttendanceID: 42,
		BreakType:    "restroom",
		BreakStart:   "2025-03-03T14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03T14:00:00+09:00", sentPayload.BreakStart)
	assert.Nil(t, sentPayload.BreakEnd)
	assert.True(t, result.Refreshed)
}

func TestAttendanceService_CreateBreak_EndBeforeStart(t *testing.T) {
	_, err := newTestService(&fakeAttendanceAPI{}, nil).CreateBreak(context.Background(), attendance.CreateBreakRequest{
		AttendanceID: 42,
		BreakType:    "eating",
		BreakStart:   "2025-03-03T14:00",
		BreakEnd:     "2025-03-03T13:00",
	})
	assert.Error(t, err)
}

func TestAttendanceService_CreatePenalty_Refetches(t *testing.T) {
	api := &fakeAttendanceAPI{
		createPenaltyFn: func(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Penalty, error) {
			return &attendance.Penalty{ID: 31, AttendanceID: 42, Description: payload.Description, Price: payload.Price}, nil
		},
		getFn: func(ctx context.Context, id int64) (*attendance.Attendance, error) {
			return testRecord(), nil
		},
	}

	result, err := newTestService(api, nil).CreatePenalty(context.Background(), attendance.CreateAdjustmentRequest{
		AttendanceID: 42,
		Description:  "no uniform",
		Price:        decimal.NewFromInt(3000),
	})
	require.NoError(t, err)
	assert.True(t, result.Refreshed)
	require.NotNil(t, result.Detail)
}

func TestAttendanceService_DeleteBonus_WriteErrorPropagates(t *testing.T) {
	api := &fakeAttendanceAPI{
		deleteBonusFn: func(ctx context.Context, bonusID int64) error {
			return attendance.ErrBonusNotFound
		},
	}

	_, err := newTestService(api, nil).DeleteBonus(context.Background(), 42, 5)
	assert.ErrorIs(t, err, attendance.ErrBonusNotFound)
}

func TestAttendanceService_History_Pagination(t *testing.T) {
	api := &fakeAttendanceAPI{
		historyFn: func(ctx context.Context, employeeID int64, month string, page, perPage int) (*attendance.HistoryPayload, error) {
			assert.Equal(t, int64(7), employeeID)
			assert.Equal(t, "all", month)
			assert.Equal(t, 2, page)
			assert.Equal(t, 10, perPage)
			return &attendance.HistoryPayload{
				AttendanceRecords: []attendance.Attendance{*testRecord()},
				TotalPages:        3,
			}, nil
		},
	}

	resp, err := newTestService(api, nil).History(context.Background(), attendance.HistoryFilter{
		EmployeeID: 7,
		Page:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.PerPage)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasPrev)
	assert.True(t, resp.HasNext)

	require.Len(t, resp.Records, 1)
	row := resp.Records[0]
	assert.Equal(t, "2025-03-03", row.Date)
	assert.Equal(t, "09:00", row.ClockIn)
	assert.Equal(t, "18:00", row.ClockOut)
	require.Len(t, row.Breaks, 1)
	assert.Equal(t, "eating (12:00 - 13:00)", row.Breaks[0])
	assert.Equal(t, "₩80000", row.TotalWage)
}

func TestAttendanceService_History_LastPageHasNoNext(t *testing.T) {
	api := &fakeAttendanceAPI{
		historyFn: func(ctx context.Context, employeeID int64, month string, page, perPage int) (*attendance.HistoryPayload, error) {
			return &attendance.HistoryPayload{TotalPages: 1}, nil
		},
	}

	resp, err := newTestService(api, nil).History(context.Background(), attendance.HistoryFilter{EmployeeID: 7})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.False(t, resp.HasPrev)
	assert.False(t, resp.HasNext)
	assert.Empty(t, resp.Records)
}

func TestAttendanceService_History_InvalidMonth(t *testing.T) {
	_, err := newTestService(&fakeAttendanceAPI{}, nil).History(context.Background(), attendance.HistoryFilter{
		EmployeeID: 7,
		Month:      "13",
	})
	assert.Error(t, err)
}
