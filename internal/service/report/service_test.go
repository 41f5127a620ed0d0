package report

import (
	"context"
	"testing"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/domain/report"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocation = time.FixedZone("KST", 9*60*60)

type fakeReportAPI struct {
	payload *report.Report
	err     error
}

func (f *fakeReportAPI) GetWeek(ctx context.Context, employeeID int64, startDate string) (*report.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newTestService(api report.API, now time.Time) report.Service {
	svc := NewReportService(api, testLocation, "₩").(*ReportServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

// kstTime builds a timestamp at the given KST wall clock.
func kstTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, testLocation)
}

func weekLog(id int64, clockIn time.Time) attendance.Attendance {
	out := clockIn.Add(9 * time.Hour)
	return attendance.Attendance{
		ID:             id,
		EmployeeID:     7,
		ClockIn:        clockIn,
		ClockOut:       &out,
		TotalBreakTime: 0.5,
		BreakLogs:      []attendance.BreakLog{{ID: id * 10, AttendanceID: id}},
		TotalPenalties: decimal.NewFromInt(1000),
		TotalBonus:     decimal.NewFromInt(2000),
		NetPay:         decimal.NewFromInt(90000),
	}
}

func TestReportService_GetWeek_GridHasSevenDaysMondayFirst(t *testing.T) {
	// 2025-03-03 is a Monday.
	api := &fakeReportAPI{payload: &report.Report{
		Name: "Jane",
		AttendanceLogs: []attendance.Attendance{
			weekLog(1, kstTime(2025, 3, 4, 9, 0)),
			weekLog(2, kstTime(2025, 3, 7, 10, 30)),
		},
	}}

	resp, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID: 7,
		StartDate:  "2025-03-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", resp.EmployeeName)
	assert.Equal(t, "2025-03-03", resp.WeekStart)
	assert.Equal(t, "2025-03-09", resp.WeekEnd)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Monday", resp.Days[0].Weekday)
	assert.Equal(t, "Sunday", resp.Days[6].Weekday)

	assert.False(t, resp.Days[0].HasLog)
	assert.True(t, resp.Days[1].HasLog)
	assert.Equal(t, int64(1), resp.Days[1].AttendanceID)
	assert.Equal(t, "09:00", resp.Days[1].ClockIn)
	assert.Equal(t, "18:00", resp.Days[1].ClockOut)
	assert.Equal(t, 30, resp.Days[1].BreakMinutes)
	assert.Equal(t, 1, resp.Days[1].BreakCount)
	assert.Equal(t, "₩1000", resp.Days[1].TotalPenalty)
	assert.Equal(t, "₩2000", resp.Days[1].TotalBonus)
	assert.Equal(t, "₩90000", resp.Days[1].NetPay)

	assert.True(t, resp.Days[4].HasLog)
	assert.Equal(t, int64(2), resp.Days[4].AttendanceID)
}

func TestReportService_GetWeek_OneCellPerLog(t *testing.T) {
	// Two logs on the same date: only the first claims the cell.
	api := &fakeReportAPI{payload: &report.Report{
		Name: "Jane",
		AttendanceLogs: []attendance.Attendance{
			weekLog(1, kstTime(2025, 3, 4, 9, 0)),
			weekLog(2, kstTime(2025, 3, 4, 20, 0)),
		},
	}}

	resp, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID: 7,
		StartDate:  "2025-03-03",
	})
	require.NoError(t, err)

	claimed := 0
	for _, day := range resp.Days {
		if day.HasLog {
			claimed++
			assert.Equal(t, int64(1), day.AttendanceID)
		}
	}
	assert.Equal(t, 1, claimed)
}

func TestReportService_GetWeek_LateMinutes(t *testing.T) {
	log := weekLog(1, kstTime(2025, 3, 4, 9, 0))
	log.LateRecord = &attendance.LateRecord{ID: 1, AttendanceID: 1, LateDurationMinutes: 15}

	api := &fakeReportAPI{payload: &report.Report{
		Name:           "Jane",
		AttendanceLogs: []attendance.Attendance{log},
	}}

	resp, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID: 7,
		StartDate:  "2025-03-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.Days[1].LateMinutes)
}

func TestReportService_GetWeek_TasksVisibleOnlyToday(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Description: "open shop", TaskDate: "2025-03-03"},
		{ID: 2, Description: "stock count", TaskDate: "2025-03-03"},
		{ID: 3, Description: "close shop", TaskDate: "2025-03-03"},
	}
	api := &fakeReportAPI{payload: &report.Report{Name: "Jane", Tasks: tasks}}

	// Selected date is the wall-clock today: panel visible, three tasks
	// split two left, one right.
	resp, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID:   7,
		StartDate:    "2025-03-03",
		SelectedDate: "2025-03-03",
	})
	require.NoError(t, err)

	assert.True(t, resp.Tasks.Visible)
	require.Len(t, resp.Tasks.Left, 2)
	require.Len(t, resp.Tasks.Right, 1)
	assert.Equal(t, int64(1), resp.Tasks.Left[0].ID)
	assert.Equal(t, int64(3), resp.Tasks.Right[0].ID)

	// Same request a day later: selected date is in the past, no panel.
	resp, err = newTestService(api, kstTime(2025, 3, 4, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID:   7,
		StartDate:    "2025-03-03",
		SelectedDate: "2025-03-03",
	})
	require.NoError(t, err)

	assert.False(t, resp.Tasks.Visible)
	assert.Empty(t, resp.Tasks.Left)
	assert.Empty(t, resp.Tasks.Right)
}

func TestReportService_GetWeek_SingleTaskStaysLeft(t *testing.T) {
	api := &fakeReportAPI{payload: &report.Report{
		Name:  "Jane",
		Tasks: []task.Task{{ID: 1, Description: "open shop", TaskDate: "2025-03-03"}},
	}}

	resp, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID:   7,
		StartDate:    "2025-03-03",
		SelectedDate: "2025-03-03",
	})
	require.NoError(t, err)

	assert.True(t, resp.Tasks.Visible)
	require.Len(t, resp.Tasks.Left, 1)
	assert.Empty(t, resp.Tasks.Right)
}

func TestReportService_GetWeek_SelectedDayPenalties(t *testing.T) {
	log := weekLog(1, kstTime(2025, 3, 4, 9, 0))
	log.Penalties = []attendance.Penalty{
		{ID: 21, AttendanceID: 1, Description: "late", Price: decimal.NewFromInt(5000)},
	}

	api := &fakeReportAPI{payload: &report.Report{
		Name:           "Jane",
		AttendanceLogs: []attendance.Attendance{log},
	}}

	resp, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID:   7,
		StartDate:    "2025-03-03",
		SelectedDate: "2025-03-04",
	})
	require.NoError(t, err)

	require.Len(t, resp.Penalties, 1)
	assert.Equal(t, "late", resp.Penalties[0].Description)
	assert.Equal(t, "₩5000", resp.Penalties[0].Price)
}

func TestReportService_GetWeek_StartDateMustBeMonday(t *testing.T) {
	_, err := newTestService(&fakeReportAPI{}, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID: 7,
		StartDate:  "2025-03-04",
	})
	assert.Error(t, err)
}

func TestReportService_GetWeek_UnknownEmployee(t *testing.T) {
	api := &fakeReportAPI{err: employee.ErrEmployeeNotFound}

	_, err := newTestService(api, kstTime(2025, 3, 3, 12, 0)).GetWeek(context.Background(), report.WeekRequest{
		EmployeeID: 99,
		StartDate:  "2025-03-03",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
