package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
)

type attendanceAPI struct {
	client *Client
}

func NewAttendanceAPI(client *Client) attendance.API {
	return &attendanceAPI{client: client}
}

// Get implements attendance.API.
func (a *attendanceAPI) Get(ctx context.Context, id int64) (*attendance.Attendance, error) {
	var record attendance.Attendance
	err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/get/attendance/%d", id), nil, nil, &record)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &record, nil
}

// EditClock implements attendance.API. field is clock_in or clock_out.
func (a *attendanceAPI) EditClock(ctx context.Context, field string, payload attendance.EditClockPayload) (*attendance.EditClockResult, error) {
	var result attendance.EditClockResult
	err := a.client.do(ctx, http.MethodPut, "/attendance/edit/"+field, nil, payload, &result)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &result, nil
}

// DeleteClockOut implements attendance.API.
func (a *attendanceAPI) DeleteClockOut(ctx context.Context, attendanceID int64) error {
	err := a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/attendance/delete/%d/clock_out", attendanceID), nil, nil, nil)
	if err != nil && statusOf(err) == http.StatusNotFound {
		return attendance.ErrNotClockedOut
	}
	return err
}

// EditBreak implements attendance.API. field is break_start or break_end;
// the backend exposes one endpoint per field.
func (a *attendanceAPI) EditBreak(ctx context.Context, field string, payload attendance.EditBreakPayload) (*attendance.EditBreakResult, error) {
	path := "/edit/break/start"
	if field == "break_end" {
		path = "/edit/break/end"
	}

	var result attendance.EditBreakResult
	err := a.client.do(ctx, http.MethodPut, path, nil, payload, &result)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrBreakNotFound
		}
		return nil, err
	}
	return &result, nil
}

// CreateBreak implements attendance.API.
func (a *attendanceAPI) CreateBreak(ctx context.Context, payload attendance.CreateBreakPayload) (*attendance.BreakLog, error) {
	var created attendance.BreakLog
	err := a.client.do(ctx, http.MethodPost, "/create/break", nil, payload, &created)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &created, nil
}

// DeleteBreak implements attendance.API.
func (a *attendanceAPI) DeleteBreak(ctx context.Context, breakID int64) error {
	err := a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/delete/break/%d", breakID), nil, nil, nil)
	if err != nil && statusOf(err) == http.StatusNotFound {
		return attendance.ErrBreakNotFound
	}
	return err
}

// CreatePenalty implements attendance.API.
func (a *attendanceAPI) CreatePenalty(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Penalty, error) {
	var created attendance.Penalty
	err := a.client.do(ctx, http.MethodPost, "/penalties", nil, payload, &created)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &created, nil
}

// DeletePenalty implements attendance.API.
func (a *attendanceAPI) DeletePenalty(ctx context.Context, penaltyID int64) error {
	err := a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/penalties/%d", penaltyID), nil, nil, nil)
	if err != nil && statusOf(err) == http.StatusNotFound {
		return attendance.ErrPenaltyNotFound
	}
	return err
}

// CreateBonus implements attendance.API.
func (a *attendanceAPI) CreateBonus(ctx context.Context, payload attendance.CreateAdjustmentRequest) (*attendance.Bonus, error) {
	var created attendance.Bonus
	err := a.client.do(ctx, http.MethodPost, "/bonuses", nil, payload, &created)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &created, nil
}

// DeleteBonus implements attendance.API.
func (a *attendanceAPI) DeleteBonus(ctx context.Context, bonusID int64) error {
	err := a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/bonuses/%d", bonusID), nil, nil, nil)
	if err != nil && statusOf(err) == http.StatusNotFound {
		return attendance.ErrBonusNotFound
	}
	return err
}

// History implements attendance.API.
func (a *attendanceAPI) History(ctx context.Context, employeeID int64, month string, page, perPage int) (*attendance.HistoryPayload, error) {
	query := url.Values{}
	query.Set("month", month)
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var payload attendance.HistoryPayload
	err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/attendance/%d", employeeID), query, nil, &payload)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}
	return &payload, nil
}
