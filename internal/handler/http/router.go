package http

import (
	"log/slog"
	"os"

	"github.com/aoncodev/timeclock-admin/internal/config"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/middleware"
	"github.com/aoncodev/timeclock-admin/internal/pkg/session"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	sessions session.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	timesheetHandler TimesheetHandler,
	taskHandler TaskHandler,
	reportHandler ReportHandler,
	preferencesHandler PreferencesHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-admin"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires an admin session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(sessions.JWTAuth(), jwtauth.TokenFromHeader, middleware.TokenFromSessionCookie))
			r.Use(middleware.AuthRequired(sessions))
			r.Use(middleware.AdminOnly)

			r.Get("/auth/session", authHandler.Session)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)

				r.Get("/{employeeID}/attendance", attendanceHandler.History)
				r.Get("/{employeeID}/report", reportHandler.GetWeek)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/{id}", attendanceHandler.GetDetail)
				r.Put("/clock", attendanceHandler.EditClock)
				r.Delete("/{id}/clock-out", attendanceHandler.DeleteClockOut)

				r.Post("/breaks", attendanceHandler.CreateBreak)
				r.Put("/breaks", attendanceHandler.EditBreak)
				r.Delete("/{id}/breaks/{breakID}", attendanceHandler.DeleteBreak)

				r.Post("/penalties", attendanceHandler.CreatePenalty)
				r.Delete("/{id}/penalties/{penaltyID}", attendanceHandler.DeletePenalty)

				r.Post("/bonuses", attendanceHandler.CreateBonus)
				r.Delete("/{id}/bonuses/{bonusID}", attendanceHandler.DeleteBonus)
			})

			r.Get("/timesheet", timesheetHandler.GetTimesheet)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.ListTasks)
				r.Post("/", taskHandler.CreateTask)
				r.Put("/{id}/toggle", taskHandler.ToggleTask)
				r.Delete("/{id}", taskHandler.DeleteTask)
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/theme", preferencesHandler.GetTheme)
				r.Put("/theme", preferencesHandler.SetTheme)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
