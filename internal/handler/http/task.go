package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/aoncodev/timeclock-admin/internal/handler/http/response"
)

type TaskHandler interface {
	ListTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	ToggleTask(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.Service
}

func NewTaskHandler(taskService task.Service) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// ListTasks implements TaskHandler
func (h *taskHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter := task.TaskFilter{
		TaskDate: r.URL.Query().Get("task_date"),
	}
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		employeeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "employee_id must be a number", nil)
			return
		}
		filter.EmployeeID = &employeeID
	}

	results, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateTask implements TaskHandler
func (h *taskHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create task request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created", result)
}

// ToggleTask implements TaskHandler
func (h *taskHandlerImpl) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	result, err := h.taskService.Toggle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task toggled", result)
}

// DeleteTask implements TaskHandler
func (h *taskHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}
