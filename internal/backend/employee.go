package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
)

type employeeAPI struct {
	client *Client
}

func NewEmployeeAPI(client *Client) employee.API {
	return &employeeAPI{client: client}
}

// List implements employee.API.
func (a *employeeAPI) List(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	if err := a.client.do(ctx, http.MethodGet, "/employees", nil, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// Create implements employee.API.
func (a *employeeAPI) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.Employee, error) {
	var created employee.Employee
	if err := a.client.do(ctx, http.MethodPost, "/employee", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update implements employee.API.
func (a *employeeAPI) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (*employee.Employee, error) {
	var updated employee.Employee
	err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/employee/%d", id), nil, req, &updated)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete implements employee.API.
func (a *employeeAPI) Delete(ctx context.Context, id int64) error {
	err := a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/employee/%d", id), nil, nil, nil)
	if err != nil && statusOf(err) == http.StatusNotFound {
		return employee.ErrEmployeeNotFound
	}
	return err
}
