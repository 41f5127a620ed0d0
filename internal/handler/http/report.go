package http

import (
	"net/http"

	"github.com/aoncodev/timeclock-admin/internal/domain/report"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
)

type ReportHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetWeek implements ReportHandler
func (h *reportHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseID(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	req := report.WeekRequest{
		EmployeeID:   employeeID,
		StartDate:    r.URL.Query().Get("start_date"),
		SelectedDate: r.URL.Query().Get("selected_date"),
	}

	result, err := h.reportService.GetWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
