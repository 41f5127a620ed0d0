package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aoncodev/timeclock-admin/internal/domain/timesheet"
)

type timesheetAPI struct {
	client *Client
}

func NewTimesheetAPI(client *Client) timesheet.API {
	return &timesheetAPI{client: client}
}

// EmployeesStatus implements timesheet.API.
func (a *timesheetAPI) EmployeesStatus(ctx context.Context, date string) (*timesheet.StatusPayload, error) {
	query := url.Values{}
	query.Set("date", date)

	var payload timesheet.StatusPayload
	if err := a.client.do(ctx, http.MethodGet, "/employees/status/", query, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
