package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/backend"
	"github.com/aoncodev/timeclock-admin/internal/config"
	appHTTP "github.com/aoncodev/timeclock-admin/internal/handler/http"
	"github.com/aoncodev/timeclock-admin/internal/pkg/session"
	attendanceService "github.com/aoncodev/timeclock-admin/internal/service/attendance"
	serviceAuth "github.com/aoncodev/timeclock-admin/internal/service/auth"
	employeeService "github.com/aoncodev/timeclock-admin/internal/service/employee"
	reportService "github.com/aoncodev/timeclock-admin/internal/service/report"
	taskService "github.com/aoncodev/timeclock-admin/internal/service/task"
	timesheetService "github.com/aoncodev/timeclock-admin/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	// Validated by config.Load.
	displayLocation, _ := time.LoadLocation(cfg.Display.Timezone)

	client := backend.NewClient(cfg.Backend)

	authAPI := backend.NewAuthAPI(client)
	employeeAPI := backend.NewEmployeeAPI(client)
	attendanceAPI := backend.NewAttendanceAPI(client)
	timesheetAPI := backend.NewTimesheetAPI(client)
	taskAPI := backend.NewTaskAPI(client)
	reportAPI := backend.NewReportAPI(client)

	sessions := session.NewSessionService(cfg.Session.Secret, cfg.Session.Expiration)

	authSvc := serviceAuth.NewAuthService(authAPI, sessions)
	employeeSvc := employeeService.NewEmployeeService(employeeAPI, displayLocation, cfg.Display.Currency)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceAPI, taskAPI, displayLocation, cfg.Display.Currency)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetAPI, displayLocation, cfg.Display.Currency)
	taskSvc := taskService.NewTaskService(taskAPI, employeeAPI, displayLocation)
	reportSvc := reportService.NewReportService(reportAPI, displayLocation, cfg.Display.Currency)

	authHandler := appHTTP.NewAuthHandler(authSvc, sessions)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	preferencesHandler := appHTTP.NewPreferencesHandler()

	router := appHTTP.NewRouter(
		cfg,
		sessions,
		authHandler,
		employeeHandler,
		attendanceHandler,
		timesheetHandler,
		taskHandler,
		reportHandler,
		preferencesHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
