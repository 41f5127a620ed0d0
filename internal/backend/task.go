package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aoncodev/timeclock-admin/internal/domain/task"
)

type taskAPI struct {
	client *Client
}

func NewTaskAPI(client *Client) task.API {
	return &taskAPI{client: client}
}

// Filter implements task.API.
func (a *taskAPI) Filter(ctx context.Context, filter task.TaskFilter) ([]task.Task, error) {
	query := url.Values{}
	query.Set("task_date", filter.TaskDate)
	if filter.EmployeeID != nil {
		query.Set("employee_id", strconv.FormatInt(*filter.EmployeeID, 10))
	}

	var tasks []task.Task
	if err := a.client.do(ctx, http.MethodGet, "/tasks/filter", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create implements task.API.
func (a *taskAPI) Create(ctx context.Context, req task.CreateTaskRequest) (*task.Task, error) {
	var created task.Task
	if err := a.client.do(ctx, http.MethodPost, "/tasks/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Toggle implements task.API.
func (a *taskAPI) Toggle(ctx context.Context, id int64) (*task.Task, error) {
	var toggled task.Task
	err := a.client.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/toggle", id), nil, nil, &toggled)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, task.ErrTaskNotFound
		}
		return nil, err
	}
	return &toggled, nil
}

// Delete implements task.API.
func (a *taskAPI) Delete(ctx context.Context, id int64) error {
	err := a.client.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, nil)
	if err != nil && statusOf(err) == http.StatusNotFound {
		return task.ErrTaskNotFound
	}
	return err
}
