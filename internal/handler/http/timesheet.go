package http

import (
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/domain/timesheet"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetTimesheet(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// GetTimesheet implements TimesheetHandler
func (h *timesheetHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	filter := timesheet.Filter{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.timesheetService.GetTimesheet(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
