package task

import "context"

type Service interface {
	List(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)
	Create(ctx context.Context, req CreateTaskRequest) (*TaskResponse, error)
	Toggle(ctx context.Context, id int64) (*TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}
