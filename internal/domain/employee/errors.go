package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidRole      = errors.New("role must be admin or employee")
	ErrNegativeWage     = errors.New("hourly wage must not be negative")
)
