package todo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// todoAdapter wraps ServiceContainer for type-safe access to the procedures.
// It is the transport client: requests and responses cross the batched
// request-reply channel as JSON, and structured procedure failures are turned
// back into *ProcedureError values.
type todoAdapter struct {
	container mono.ServiceContainer
}

// NewTodoAdapter creates a new adapter for the todo services.
func NewTodoAdapter(container mono.ServiceContainer) TodoPort {
	if container == nil {
		panic("todo adapter requires non-nil ServiceContainer")
	}
	return &todoAdapter{container: container}
}

// CreateTask calls the create-task procedure.
func (a *todoAdapter) CreateTask(ctx context.Context, session *user.Session, input task.CreateTaskInput) (*TaskView, error) {
	req := CreateTaskRequest{Session: session, Input: input}
	var resp CreateTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-task service call failed: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Task, nil
}

// GetTasks calls the get-tasks procedure.
func (a *todoAdapter) GetTasks(ctx context.Context, session *user.Session) ([]TaskView, error) {
	req := GetTasksRequest{Session: session}
	var resp GetTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-tasks", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-tasks service call failed: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Tasks, nil
}

// GetSingleTask calls the get-single-task procedure.
func (a *todoAdapter) GetSingleTask(ctx context.Context, session *user.Session, input task.GetSingleTaskInput) (*TaskView, error) {
	req := GetSingleTaskRequest{Session: session, Input: input}
	var resp GetSingleTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-single-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-single-task service call failed: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Task, nil
}

// UpdateTask calls the update-task procedure.
func (a *todoAdapter) UpdateTask(ctx context.Context, session *user.Session, input task.UpdateTaskInput) (*TaskView, error) {
	req := UpdateTaskRequest{Session: session, Input: input}
	var resp UpdateTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-task service call failed: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}
	return resp.Task, nil
}

// DeleteTask calls the delete-task procedure.
func (a *todoAdapter) DeleteTask(ctx context.Context, session *user.Session, input task.DeleteTaskInput) error {
	req := DeleteTaskRequest{Session: session, Input: input}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-task", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-task service call failed: %w", err)
	}
	if resp.Error != nil {
		return resp.Error
	}
	if !resp.Deleted {
		return fmt.Errorf("task not deleted: %s", input.TaskID)
	}
	return nil
}
