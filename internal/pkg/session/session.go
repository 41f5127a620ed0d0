package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const CookieName = "admin_session"

type Service interface {
	GenerateSessionToken(user auth.User, backendToken string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearedSessionCookie() *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

// SessionService wraps the backend-issued bearer token inside a signed
// session JWT so the gateway itself stays stateless. Revocation is an
// in-memory list; a restart logs every admin out, which is acceptable for
// a token scheme with no refresh flow.
type SessionService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
	revokedTokens  map[string]int64
	mu             sync.RWMutex
}

func NewSessionService(secretKey string, expirationTime string) Service {
	return &SessionService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:  make(map[string]int64),
	}
}

func (s *SessionService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *SessionService) GenerateSessionToken(user auth.User, backendToken string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(s.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id":   user.EmployeeID,
		"name":          user.Name,
		"role":          string(user.Role),
		"backend_token": backendToken,
		"type":          "session",
		"exp":           expiresAt,
	}

	_, tokenString, err := s.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (s *SessionService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (s *SessionService) ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (s *SessionService) RevokeToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revokedTokens[token] = time.Now().Unix()
}

func (s *SessionService) IsTokenRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, revoked := s.revokedTokens[token]
	return revoked
}

// UserFromContext rebuilds the authenticated user from verified session
// claims placed on the context by the jwtauth verifier.
func UserFromContext(ctx context.Context) (auth.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.User{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(float64)
	if !ok {
		return auth.User{}, auth.ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	role, ok := claims["role"].(string)
	if !ok {
		return auth.User{}, auth.ErrInvalidToken
	}

	return auth.User{
		EmployeeID: int64(employeeID),
		Name:       name,
		Role:       employee.Role(role),
	}, nil
}

// BackendTokenFromContext extracts the wrapped backend bearer token from
// verified session claims.
func BackendTokenFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	token, ok := claims["backend_token"].(string)
	if !ok || token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}
