package report

import (
	"context"
	"math"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/domain/report"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/aoncodev/timeclock-admin/internal/pkg/timefmt"
)

type ReportServiceImpl struct {
	api      report.API
	location *time.Location
	currency string
	now      func() time.Time
}

func (r *ReportServiceImpl) money(row attendance.Attendance) (penalty, bonus, netPay string) {
	return r.currency + row.TotalPenalties.StringFixed(0),
		r.currency + row.TotalBonus.StringFixed(0),
		r.currency + row.NetPay.StringFixed(0)
}

// buildDays lays the week's logs onto a Mon-Sun grid. Each calendar day
// claims at most one log; a day with no log renders the empty-state cell.
func (r *ReportServiceImpl) buildDays(weekStart time.Time, logs []attendance.Attendance) []report.DayCell {
	days := make([]report.DayCell, 0, 7)
	claimed := make(map[int64]bool, len(logs))

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		cell := report.DayCell{
			Date:    timefmt.FormatDate(date, r.location),
			Weekday: date.Weekday().String(),
		}

		for _, log := range logs {
			if claimed[log.ID] || !timefmt.SameDay(log.ClockIn, date, r.location) {
				continue
			}
			claimed[log.ID] = true

			clockIn := log.ClockIn
			cell.HasLog = true
			cell.AttendanceID = log.ID
			cell.ClockIn = timefmt.FormatForDisplay(&clockIn, r.location)
			cell.ClockOut = timefmt.FormatForDisplay(log.ClockOut, r.location)
			cell.BreakCount = len(log.BreakLogs)
			cell.BreakMinutes = int(math.Round(log.TotalBreakTime * 60))
			if log.LateRecord != nil {
				cell.LateMinutes = log.LateRecord.LateDurationMinutes
			}
			cell.TotalPenalty, cell.TotalBonus, cell.NetPay = r.money(log)
			break
		}

		days = append(days, cell)
	}

	return days
}

// buildTasks gates the tasks panel behind the real-world today and splits
// more than one task across two columns, left column first.
func (r *ReportServiceImpl) buildTasks(selectedDate string, tasks []task.Task) report.TasksPanel {
	today := timefmt.FormatDate(r.now(), r.location)
	if selectedDate != today {
		return report.TasksPanel{Visible: false}
	}

	items := make([]report.TaskItem, 0, len(tasks))
	for _, tk := range tasks {
		if tk.TaskDate != selectedDate {
			continue
		}
		items = append(items, report.TaskItem{
			ID:          tk.ID,
			Description: tk.Description,
			Status:      tk.Status,
		})
	}

	panel := report.TasksPanel{Visible: true}
	if len(items) <= 1 {
		panel.Left = items
		return panel
	}

	split := (len(items) + 1) / 2
	panel.Left = items[:split]
	panel.Right = items[split:]
	return panel
}

func (r *ReportServiceImpl) selectedPenalties(selectedDate string, logs []attendance.Attendance) []attendance.AdjustmentRow {
	rows := make([]attendance.AdjustmentRow, 0)
	for _, log := range logs {
		if timefmt.FormatDate(log.ClockIn, r.location) != selectedDate {
			continue
		}
		for _, p := range log.Penalties {
			rows = append(rows, attendance.AdjustmentRow{
				ID:          p.ID,
				Description: p.Description,
				Price:       r.currency + p.Price.StringFixed(0),
			})
		}
	}
	return rows
}

// GetWeek implements report.Service.
func (r *ReportServiceImpl) GetWeek(ctx context.Context, req report.WeekRequest) (*report.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := r.api.GetWeek(ctx, req.EmployeeID, req.StartDate)
	if err != nil {
		return nil, err
	}

	weekStart, err := timefmt.ParseDate(req.StartDate, r.location)
	if err != nil {
		return nil, err
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	return &report.WeekResponse{
		EmployeeName: payload.Name,
		WeekStart:    timefmt.FormatDate(weekStart, r.location),
		WeekEnd:      timefmt.FormatDate(weekEnd, r.location),
		Days:         r.buildDays(weekStart, payload.AttendanceLogs),
		SelectedDate: req.SelectedDate,
		Tasks:        r.buildTasks(req.SelectedDate, payload.Tasks),
		Penalties:    r.selectedPenalties(req.SelectedDate, payload.AttendanceLogs),
	}, nil
}

func NewReportService(api report.API, location *time.Location, currency string) report.Service {
	return &ReportServiceImpl{
		api:      api,
		location: location,
		currency: currency,
		now:      time.Now,
	}
}
