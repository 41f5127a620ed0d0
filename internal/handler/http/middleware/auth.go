package middleware

import (
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
	"github.com/aoncodev/timeclock-admin/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
)

// TokenFromSessionCookie extracts the session JWT from its cookie, for use
// as a jwtauth.Verify token source alongside the Authorization header.
func TokenFromSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SessionTokenFromRequest returns the raw session token string, header
// first, cookie second. Revocation tracks raw strings, not parsed claims.
func SessionTokenFromRequest(r *http.Request) string {
	if token := jwtauth.TokenFromHeader(r); token != "" {
		return token
	}
	return TokenFromSessionCookie(r)
}

func AuthRequired(sessions session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "session" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if sessions.IsTokenRevoked(SessionTokenFromRequest(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
