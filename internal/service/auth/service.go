package auth

import (
	"context"
	"fmt"

	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/pkg/session"
)

type AuthServiceImpl struct {
	api      auth.API
	sessions session.Service
}

// Login implements auth.Service. The backend authenticates any employee's
// QR id, but only admins may hold a dashboard session.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := a.api.Login(ctx, req.QRID)
	if err != nil {
		return nil, err
	}

	if employee.Role(result.Role) != employee.RoleAdmin {
		return nil, auth.ErrAdminPrivilegeRequired
	}

	user := auth.User{
		EmployeeID: result.EmployeeID,
		Name:       result.Name,
		Role:       employee.Role(result.Role),
	}

	token, expiresAt, err := a.sessions.GenerateSessionToken(user, result.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &auth.LoginResponse{
		SessionToken: token,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}

// ValidateSession implements auth.Service. The wrapped backend token is
// re-checked against the backend on every call; an expired or rejected
// token invalidates the whole session.
func (a *AuthServiceImpl) ValidateSession(ctx context.Context) (*auth.SessionResponse, error) {
	backendToken, err := session.BackendTokenFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := a.api.ValidateToken(ctx, backendToken)
	if err != nil {
		return nil, err
	}

	if user.Role != employee.RoleAdmin {
		return nil, auth.ErrAdminPrivilegeRequired
	}

	return &auth.SessionResponse{User: *user}, nil
}

// Logout implements auth.Service.
func (a *AuthServiceImpl) Logout(ctx context.Context, sessionToken string) {
	if sessionToken == "" {
		return
	}
	a.sessions.RevokeToken(sessionToken)
}

func NewAuthService(api auth.API, sessions session.Service) auth.Service {
	return &AuthServiceImpl{
		api:      api,
		sessions: sessions,
	}
}
