package task

import "time"

// Task lifecycle: created with Status false and a nil CompletedAt; the
// backend toggle endpoint sets or clears both together.
type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	EmployeeID  int64      `json:"employee_id"`
	TaskDate    string     `json:"task_date"` // YYYY-MM-DD
	CompletedAt *time.Time `json:"completed_at"`
	Status      bool       `json:"status"`
}
