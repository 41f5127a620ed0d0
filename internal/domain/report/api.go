package report

import "context"

// API is the slice of the remote timekeeping backend this domain consumes.
type API interface {
	GetWeek(ctx context.Context, employeeID int64, startDate string) (*Report, error)
}
