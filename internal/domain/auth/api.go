package auth

import "context"

// BackendLoginResult is the backend's answer to a QR login.
type BackendLoginResult struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	EmployeeID int64  `json:"employee_id"`
	Name       string `json:"name"`
}

// API is the authentication slice of the remote timekeeping backend.
type API interface {
	Login(ctx context.Context, qrID string) (*BackendLoginResult, error)
	ValidateToken(ctx context.Context, token string) (*User, error)
}
