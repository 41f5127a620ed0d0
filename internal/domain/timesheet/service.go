package timesheet

import "context"

type Service interface {
	GetTimesheet(ctx context.Context, filter Filter) (*Response, error)
}
