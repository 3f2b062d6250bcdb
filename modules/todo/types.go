package todo

import (
	"context"
	"time"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
)

// TaskView is the task representation returned by the procedures.
type TaskView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
}

// CreateTaskRequest is the request for the create-task procedure.
type CreateTaskRequest struct {
	Session *user.Session        `json:"session,omitempty"`
	Input   task.CreateTaskInput `json:"input"`
}

// CreateTaskResponse is the response for the create-task procedure.
type CreateTaskResponse struct {
	Task  *TaskView       `json:"task,omitempty"`
	Error *ProcedureError `json:"error,omitempty"`
}

// GetTasksRequest is the request for the get-tasks procedure.
type GetTasksRequest struct {
	Session *user.Session `json:"session,omitempty"`
}

// GetTasksResponse is the response for the get-tasks procedure.
type GetTasksResponse struct {
	Tasks []TaskView      `json:"tasks"`
	Total int             `json:"total"`
	Error *ProcedureError `json:"error,omitempty"`
}

// GetSingleTaskRequest is the request for the get-single-task procedure.
type GetSingleTaskRequest struct {
	Session *user.Session           `json:"session,omitempty"`
	Input   task.GetSingleTaskInput `json:"input"`
}

// GetSingleTaskResponse is the response for the get-single-task procedure.
type GetSingleTaskResponse struct {
	Task  *TaskView       `json:"task,omitempty"`
	Error *ProcedureError `json:"error,omitempty"`
}

// UpdateTaskRequest is the request for the update-task procedure.
type UpdateTaskRequest struct {
	Session *user.Session        `json:"session,omitempty"`
	Input   task.UpdateTaskInput `json:"input"`
}

// UpdateTaskResponse is the response for the update-task procedure.
type UpdateTaskResponse struct {
	Task  *TaskView       `json:"task,omitempty"`
	Error *ProcedureError `json:"error,omitempty"`
}

// DeleteTaskRequest is the request for the delete-task procedure.
type DeleteTaskRequest struct {
	Session *user.Session        `json:"session,omitempty"`
	Input   task.DeleteTaskInput `json:"input"`
}

// DeleteTaskResponse is the response for the delete-task procedure.
type DeleteTaskResponse struct {
	Deleted bool            `json:"deleted"`
	Error   *ProcedureError `json:"error,omitempty"`
}

// TodoPort is the typed client interface for the five procedures. Callers
// receive a *ProcedureError when the procedure itself failed.
type TodoPort interface {
	CreateTask(ctx context.Context, session *user.Session, input task.CreateTaskInput) (*TaskView, error)
	GetTasks(ctx context.Context, session *user.Session) ([]TaskView, error)
	GetSingleTask(ctx context.Context, session *user.Session, input task.GetSingleTaskInput) (*TaskView, error)
	UpdateTask(ctx context.Context, session *user.Session, input task.UpdateTaskInput) (*TaskView, error)
	DeleteTask(ctx context.Context, session *user.Session, input task.DeleteTaskInput) error
}

// ListCache caches per-user task lists. Implementations must treat failures
// as misses; reads never depend on the cache being available.
type ListCache interface {
	GetTasks(ctx context.Context, userID string) ([]TaskView, bool)
	SetTasks(ctx context.Context, userID string, tasks []TaskView)
}

func toTaskView(t *task.Task) TaskView {
	return TaskView{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		UserID:    t.UserID,
	}
}
