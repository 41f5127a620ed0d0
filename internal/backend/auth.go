package backend

import (
	"context"
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
)

type authAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) auth.API {
	return &authAPI{client: client}
}

// Login implements auth.API. The backend exchanges a scanned QR id for a
// bearer token and the employee's role.
func (a *authAPI) Login(ctx context.Context, qrID string) (*auth.BackendLoginResult, error) {
	body := map[string]string{"qr_id": qrID}

	var result auth.BackendLoginResult
	err := a.client.do(ctx, http.MethodPost, "/login", nil, body, &result)
	if err != nil {
		switch statusOf(err) {
		case http.StatusUnauthorized, http.StatusNotFound:
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	return &result, nil
}

// ValidateToken implements auth.API.
func (a *authAPI) ValidateToken(ctx context.Context, token string) (*auth.User, error) {
	var user auth.User
	err := a.client.doWithToken(ctx, token, http.MethodGet, "/validate-token", &user)
	if err != nil {
		switch statusOf(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	return &user, nil
}
