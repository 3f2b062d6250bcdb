package api

import (
	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/modules/todo"
)

// ErrorResponse is the JSON error envelope returned by the HTTP surface.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  []task.FieldError `json:"fields,omitempty"`
}

// HealthResponse is the JSON body for the health endpoint.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// SignInURLResponse carries the provider consent URL and the state the
// caller should verify on callback.
type SignInURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// UpdateTaskBody is the JSON body for the update endpoint; the task id comes
// from the path.
type UpdateTaskBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ListTasksResponse is the JSON body for the list endpoint.
type ListTasksResponse struct {
	Tasks []todo.TaskView `json:"tasks"`
	Total int             `json:"total"`
}
