package auth

import "context"

type Service interface {
	// Login validates a scanned QR id with the backend and, for admins
	// only, issues a gateway session token wrapping the backend token.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// ValidateSession re-validates the wrapped backend token and returns
	// the authenticated user. Any failure means the caller must log in
	// again; there is no refresh flow.
	ValidateSession(ctx context.Context) (*SessionResponse, error)

	Logout(ctx context.Context, sessionToken string)
}
