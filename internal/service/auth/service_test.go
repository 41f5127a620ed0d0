package auth

import (
	"context"
	"testing"

	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-sessions"

type fakeAuthAPI struct {
	loginResult *auth.BackendLoginResult
	loginErr    error

	validatedUser *auth.User
	validateErr   error
	gotToken      string
}

func (f *fakeAuthAPI) Login(ctx context.Context, qrID string) (*auth.BackendLoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeAuthAPI) ValidateToken(ctx context.Context, token string) (*auth.User, error) {
	f.gotToken = token
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return f.validatedUser, nil
}

func newTestService(api auth.API) (auth.Service, session.Service) {
	sessions := session.NewSessionService(testSecret, "1h")
	return NewAuthService(api, sessions), sessions
}

// sessionContext simulates a request that passed the jwtauth verifier.
func sessionContext(t *testing.T, sessions session.Service, user auth.User, backendToken string) context.Context {
	tokenString, _, err := sessions.GenerateSessionToken(user, backendToken)
	require.NoError(t, err)

	token, err := sessions.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestAuthService_Login_AdminGetsSession(t *testing.T) {
	api := &fakeAuthAPI{loginResult: &auth.BackendLoginResult{
		Token:      "backend-token",
		Role:       "admin",
		EmployeeID: 7,
		Name:       "Jane",
	}}
	svc, sessions := newTestService(api)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{QRID: "qr-jane"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, int64(7), resp.User.EmployeeID)
	assert.Equal(t, employee.RoleAdmin, resp.User.Role)

	// The session token must verify and carry the backend token.
	token, err := sessions.JWTAuth().Decode(resp.SessionToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "backend-token", claims["backend_token"])
	assert.Equal(t, "session", claims["type"])
}

func TestAuthService_Login_NonAdminRejected(t *testing.T) {
	api := &fakeAuthAPI{loginResult: &auth.BackendLoginResult{
		Token:      "backend-token",
		Role:       "employee",
		EmployeeID: 8,
		Name:       "Bob",
	}}
	svc, _ := newTestService(api)

	_, err := svc.Login(context.Background(), auth.LoginRequest{QRID: "qr-bob"})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	api := &fakeAuthAPI{loginErr: auth.ErrInvalidCredentials}
	svc, _ := newTestService(api)

	_, err := svc.Login(context.Background(), auth.LoginRequest{QRID: "qr-nobody"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyQRID(t *testing.T) {
	svc, _ := newTestService(&fakeAuthAPI{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestAuthService_ValidateSession_ChecksBackendToken(t *testing.T) {
	user := auth.User{EmployeeID: 7, Name: "Jane", Role: employee.RoleAdmin}
	api := &fakeAuthAPI{validatedUser: &user}
	svc, sessions := newTestService(api)

	ctx := sessionContext(t, sessions, user, "backend-token")

	resp, err := svc.ValidateSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, "backend-token", api.gotToken)
	assert.Equal(t, user, resp.User)
}

func TestAuthService_ValidateSession_ExpiredBackendToken(t *testing.T) {
	user := auth.User{EmployeeID: 7, Name: "Jane", Role: employee.RoleAdmin}
	api := &fakeAuthAPI{validateErr: auth.ErrInvalidToken}
	svc, sessions := newTestService(api)

	ctx := sessionContext(t, sessions, user, "stale-token")

	_, err := svc.ValidateSession(ctx)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ValidateSession_NoSessionOnContext(t *testing.T) {
	svc, _ := newTestService(&fakeAuthAPI{})

	_, err := svc.ValidateSession(context.Background())
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	user := auth.User{EmployeeID: 7, Name: "Jane", Role: employee.RoleAdmin}
	svc, sessions := newTestService(&fakeAuthAPI{})

	tokenString, _, err := sessions.GenerateSessionToken(user, "backend-token")
	require.NoError(t, err)
	assert.False(t, sessions.IsTokenRevoked(tokenString))

	svc.Logout(context.Background(), tokenString)
	assert.True(t, sessions.IsTokenRevoked(tokenString))
}
