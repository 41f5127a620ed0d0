package employee

import (
	"context"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/pkg/timefmt"
)

type EmployeeServiceImpl struct {
	api      employee.API
	location *time.Location
	currency string
}

func (e *EmployeeServiceImpl) toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		Role:       string(emp.Role),
		QRID:       emp.QRID,
		HourlyWage: e.currency + emp.HourlyWage.StringFixed(0),
		CreatedAt:  timefmt.FormatDate(emp.CreatedAt, e.location),
	}
}

// List implements employee.Service.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.api.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, e.toResponse(emp))
	}
	return responses, nil
}

// Create implements employee.Service. The backend assigns the id and a
// fresh QR id; both come back in the created record.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := e.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	response := e.toResponse(*created)
	return &response, nil
}

// Update implements employee.Service. Only name and hourly wage are
// editable from the roster.
func (e *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if id <= 0 {
		return nil, employee.ErrEmployeeNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := e.api.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	response := e.toResponse(*updated)
	return &response, nil
}

// Delete implements employee.Service.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return employee.ErrEmployeeNotFound
	}
	return e.api.Delete(ctx, id)
}

func NewEmployeeService(api employee.API, location *time.Location, currency string) employee.Service {
	return &EmployeeServiceImpl{
		api:      api,
		location: location,
		currency: currency,
	}
}
