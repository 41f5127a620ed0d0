package employee

import "context"

type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}
