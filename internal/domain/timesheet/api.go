package timesheet

import "context"

// API is the slice of the remote timekeeping backend this domain consumes.
type API interface {
	EmployeesStatus(ctx context.Context, date string) (*StatusPayload, error)
}
