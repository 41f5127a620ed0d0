package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aoncodev/timeclock-admin/internal/domain/attendance"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetDetail(w http.ResponseWriter, r *http.Request)
	EditClock(w http.ResponseWriter, r *http.Request)
	DeleteClockOut(w http.ResponseWriter, r *http.Request)
	CreateBreak(w http.ResponseWriter, r *http.Request)
	EditBreak(w http.ResponseWriter, r *http.Request)
	DeleteBreak(w http.ResponseWriter, r *http.Request)
	CreatePenalty(w http.ResponseWriter, r *http.Request)
	DeletePenalty(w http.ResponseWriter, r *http.Request)
	CreateBonus(w http.ResponseWriter, r *http.Request)
	DeleteBonus(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// GetDetail implements AttendanceHandler
func (h *attendanceHandlerImpl) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	result, err := h.attendanceService.GetDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EditClock implements AttendanceHandler
func (h *attendanceHandlerImpl) EditClock(w http.ResponseWriter, r *http.Request) {
	var req attendance.EditClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode edit clock request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.EditClock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock time updated", result)
}

// DeleteClockOut implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteClockOut(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}

	result, err := h.attendanceService.DeleteClockOut(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock-out removed", result)
}

// CreateBreak implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create break request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreateBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Break created", result)
}

// EditBreak implements AttendanceHandler
func (h *attendanceHandlerImpl) EditBreak(w http.ResponseWriter, r *http.Request) {
	var req attendance.EditBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode edit break request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.EditBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break updated", result)
}

// DeleteBreak implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteBreak(w http.ResponseWriter, r *http.Request) {
	attendanceID, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}
	breakID, ok := parseID(r, "breakID")
	if !ok {
		response.BadRequest(w, "Break ID is required", nil)
		return
	}

	result, err := h.attendanceService.DeleteBreak(r.Context(), attendanceID, breakID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break deleted", result)
}

// CreatePenalty implements AttendanceHandler
func (h *attendanceHandlerImpl) CreatePenalty(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create penalty request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreatePenalty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Penalty created", result)
}

// DeletePenalty implements AttendanceHandler
func (h *attendanceHandlerImpl) DeletePenalty(w http.ResponseWriter, r *http.Request) {
	attendanceID, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}
	penaltyID, ok := parseID(r, "penaltyID")
	if !ok {
		response.BadRequest(w, "Penalty ID is required", nil)
		return
	}

	result, err := h.attendanceService.DeletePenalty(r.Context(), attendanceID, penaltyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Penalty deleted", result)
}

// CreateBonus implements AttendanceHandler
func (h *attendanceHandlerImpl) CreateBonus(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create bonus request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CreateBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created", result)
}

// DeleteBonus implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteBonus(w http.ResponseWriter, r *http.Request) {
	attendanceID, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Attendance ID is required", nil)
		return
	}
	bonusID, ok := parseID(r, "bonusID")
	if !ok {
		response.BadRequest(w, "Bonus ID is required", nil)
		return
	}

	result, err := h.attendanceService.DeleteBonus(r.Context(), attendanceID, bonusID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted", result)
}

// History implements AttendanceHandler
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseID(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	filter := attendance.HistoryFilter{
		EmployeeID: employeeID,
		Month:      r.URL.Query().Get("month"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		parsed, err := strconv.Atoi(page)
		if err != nil {
			response.BadRequest(w, "page must be a number", nil)
			return
		}
		filter.Page = parsed
	}
	if perPage := r.URL.Query().Get("per_page"); perPage != "" {
		parsed, err := strconv.Atoi(perPage)
		if err != nil {
			response.BadRequest(w, "per_page must be a number", nil)
			return
		}
		filter.PerPage = parsed
	}

	result, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		PerPage:    result.PerPage,
		TotalPages: result.TotalPages,
	})
}
