package task

import (
	"context"
	"time"

	"github.com/aoncodev/timeclock-admin/internal/domain/employee"
	"github.com/aoncodev/timeclock-admin/internal/domain/task"
	"github.com/aoncodev/timeclock-admin/internal/pkg/timefmt"
	"golang.org/x/sync/errgroup"
)

type TaskServiceImpl struct {
	api       task.API
	employees employee.API
	location  *time.Location
	now       func() time.Time
}

func (t *TaskServiceImpl) toResponse(tk task.Task, names map[int64]string) task.TaskResponse {
	completedAt := timefmt.DisplayPlaceholder
	if tk.CompletedAt != nil {
		completedAt = tk.CompletedAt.In(t.location).Format("2006-01-02 15:04")
	}

	return task.TaskResponse{
		ID:           tk.ID,
		Description:  tk.Description,
		EmployeeID:   tk.EmployeeID,
		EmployeeName: names[tk.EmployeeID],
		TaskDate:     tk.TaskDate,
		CompletedAt:  completedAt,
		Status:       tk.Status,
	}
}

// List implements task.Service. Tasks and the employee roster are fetched
// concurrently; the roster resolves employee names for display.
func (t *TaskServiceImpl) List(ctx context.Context, filter task.TaskFilter) ([]task.TaskResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.TaskDate == "" {
		filter.TaskDate = timefmt.FormatDate(t.now(), t.location)
	}

	var (
		tasks     []task.Task
		employees []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = t.api.Filter(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = t.employees.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(employees))
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, tk := range tasks {
		responses = append(responses, t.toResponse(tk, names))
	}
	return responses, nil
}

// Create implements task.Service.
func (t *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (*task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := t.api.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	response := t.toResponse(*created, nil)
	return &response, nil
}

// Toggle implements task.Service. The backend flips Status and sets or
// clears CompletedAt in the same write.
func (t *TaskServiceImpl) Toggle(ctx context.Context, id int64) (*task.TaskResponse, error) {
	if id <= 0 {
		return nil, task.ErrTaskNotFound
	}

	toggled, err := t.api.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}

	response := t.toResponse(*toggled, nil)
	return &response, nil
}

// Delete implements task.Service.
func (t *TaskServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return task.ErrTaskNotFound
	}
	return t.api.Delete(ctx, id)
}

func NewTaskService(api task.API, employees employee.API, location *time.Location) task.Service {
	return &TaskServiceImpl{
		api:       api,
		employees: employees,
		location:  location,
		now:       time.Now,
	}
}
