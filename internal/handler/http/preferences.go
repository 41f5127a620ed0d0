package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
)

// ThemeCookieName persists the dashboard's dark-mode preference.
const ThemeCookieName = "admin_theme"

const (
	themeLight = "light"
	themeDark  = "dark"
)

type PreferencesHandler interface {
	GetTheme(w http.ResponseWriter, r *http.Request)
	SetTheme(w http.ResponseWriter, r *http.Request)
}

type preferencesHandlerImpl struct{}

func NewPreferencesHandler() PreferencesHandler {
	return &preferencesHandlerImpl{}
}

type themePayload struct {
	Theme string `json:"theme"`
}

// GetTheme implements PreferencesHandler. No cookie means the default
// light theme.
func (h *preferencesHandlerImpl) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme := themeLight
	if cookie, err := r.Cookie(ThemeCookieName); err == nil && cookie.Value == themeDark {
		theme = themeDark
	}

	response.Success(w, themePayload{Theme: theme})
}

// SetTheme implements PreferencesHandler
func (h *preferencesHandlerImpl) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req themePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode theme request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.Theme != themeLight && req.Theme != themeDark {
		response.BadRequest(w, "theme must be one of: light, dark", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    req.Theme,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: http.SameSiteStrictMode,
	})

	response.SuccessWithMessage(w, "Theme updated", themePayload{Theme: req.Theme})
}
