package employee

import "context"

// API is the slice of the remote timekeeping backend this domain consumes.
type API interface {
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*Employee, error)
	Delete(ctx context.Context, id int64) error
}
