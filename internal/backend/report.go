package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/domain/report"
)

type reportAPI struct {
	client *Client
}

func NewReportAPI(client *Client) report.API {
	return &reportAPI{client: client}
}

// GetWeek implements report.API.
func (a *reportAPI) GetWeek(ctx context.Context, employeeID int64, startDate string) (*report.Report, error) {
	query := url.Values{}
	query.Set("start_date", startDate)

	var payload report.Report
	err := a.client.do(ctx, http.MethodGet, fmt.Sprintf("/report/%d", employeeID), query, nil, &payload)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &payload, nil
}
