package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid QR code")
	ErrInvalidToken           = errors.New("invalid or expired session token")
	ErrTokenRevoked           = errors.New("session token revoked")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
