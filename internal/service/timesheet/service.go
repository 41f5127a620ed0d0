package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/timesheet"
	"github.com/aoncodev/timeclock-admin/internal/pkg/timefmt"
)

type TimesheetServiceImpl struct {
	api      timesheet.API
	location *time.Location
	currency string
	now      func() time.Time
}

// GetTimesheet implements timesheet.Service. Employees without an
// attendance record for the date are dropped; the view only lists people
// who clocked in.
func (t *TimesheetServiceImpl) GetTimesheet(ctx context.Context, filter timesheet.Filter) (*timesheet.Response, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Date == "" {
		filter.Date = timefmt.FormatDate(t.now(), t.location)
	}

	payload, err := t.api.EmployeesStatus(ctx, filter.Date)
	if err != nil {
		return nil, err
	}

	rows := make([]timesheet.Row, 0, len(payload.Employees))
	for _, status := range payload.Employees {
		if status.Attendance == nil {
			continue
		}

		breaks := make([]string, 0, len(status.Breaks))
		for _, log := range status.Breaks {
			breaks = append(breaks, fmt.Sprintf("%s - %s",
				log.BreakType, timefmt.DecimalToTime(log.TotalBreakTime)))
		}

		rows = append(rows, timesheet.Row{
			EmployeeID: status.Employee.ID,
			Name:       status.Employee.Name,
			Role:       string(status.Employee.Role),
			ClockIn:    timefmt.FormatForDisplay(&status.Attendance.ClockIn, t.location),
			ClockOut:   timefmt.FormatForDisplay(status.Attendance.ClockOut, t.location),
			Breaks:     breaks,
			TotalBreak: timefmt.DecimalToTime(status.TotalBreakTime),
			TotalHours: timefmt.DecimalToTime(status.TotalHoursExcludingBreak),
			TotalWage:  t.currency + status.Attendance.TotalWage.StringFixed(0),
		})
	}

	return &timesheet.Response{
		Date: filter.Date,
		Rows: rows,
	}, nil
}

func NewTimesheetService(api timesheet.API, location *time.Location, currency string) timesheet.Service {
	return &TimesheetServiceImpl{
		api:      api,
		location: location,
		currency: currency,
		now:      time.Now,
	}
}
