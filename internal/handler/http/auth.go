package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/domain/auth"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/middleware"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
	"github.com/aoncodev/timeclock-admin/internal/pkg/session"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
	sessions    session.Service
}

func NewAuthHandler(authService auth.Service, sessions session.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		sessions:    sessions,
	}
}

// Login implements AuthHandler. The session token goes out both in the
// body and as an HttpOnly cookie; browser clients rely on the cookie.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.sessions.SessionCookie(result.SessionToken, result.ExpiresAt))
	response.SuccessWithMessage(w, "Login successful", result)
}

// Session implements AuthHandler.
func (h *authHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.ValidateSession(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler. Logout never fails: an absent or already
// revoked token still clears the cookie.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context(), middleware.SessionTokenFromRequest(r))

	http.SetCookie(w, h.sessions.ClearedSessionCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}
