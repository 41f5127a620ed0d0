package task

import "context"

// API is the slice of the remote timekeeping backend this domain consumes.
type API interface {
	Filter(ctx context.Context, filter TaskFilter) ([]Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (*Task, error)
	Toggle(ctx context.Context, id int64) (*Task, error)
	Delete(ctx context.Context, id int64) error
}
