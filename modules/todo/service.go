package todo

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/events"
	"github.com/go-monolith/mono"
)

// requireSession is the shared gate for authenticated procedures. It
// short-circuits before any validation or persistence work runs.
func requireSession(session *user.Session) *ProcedureError {
	if session == nil || session.UserID == "" {
		return Unauthorized()
	}
	return nil
}

// createTask handles the create-task procedure.
func (m *TodoModule) createTask(_ context.Context, req CreateTaskRequest, _ *mono.Msg) (CreateTaskResponse, error) {
	if perr := requireSession(req.Session); perr != nil {
		return CreateTaskResponse{Error: perr}, nil
	}
	if verr := req.Input.Validate(); verr != nil {
		return CreateTaskResponse{Error: BadRequest(verr)}, nil
	}

	// ID assigned here, timestamps by GORM.
	t := &task.Task{
		ID:     task.NewID(),
		Title:  req.Input.Title,
		Body:   req.Input.Body,
		UserID: req.Session.UserID,
	}
	if err := m.repo.Create(t); err != nil {
		return CreateTaskResponse{Error: Internal(err)}, nil
	}

	m.publishCreated(t)

	view := toTaskView(t)
	return CreateTaskResponse{Task: &view}, nil
}

// getTasks handles the get-tasks procedure. It is not gated: an
// unauthenticated caller gets an explicit empty list.
func (m *TodoModule) getTasks(ctx context.Context, req GetTasksRequest, _ *mono.Msg) (GetTasksResponse, error) {
	if req.Session == nil || req.Session.UserID == "" {
		return GetTasksResponse{Tasks: []TaskView{}, Total: 0}, nil
	}
	userID := req.Session.UserID

	if m.cache != nil {
		if tasks, ok := m.cache.GetTasks(ctx, userID); ok {
			return GetTasksResponse{Tasks: tasks, Total: len(tasks)}, nil
		}
	}

	// Cache miss: collapse concurrent lookups for the same user.
	val, err, _ := m.sfGroup.Do("tasks:"+userID, func() (any, error) {
		return m.repo.FindByUserID(userID)
	})
	if err != nil {
		return GetTasksResponse{Error: Internal(err)}, nil
	}

	rows := val.([]*task.Task)
	tasks := make([]TaskView, 0, len(rows))
	for _, t := range rows {
		tasks = append(tasks, toTaskView(t))
	}

	if m.cache != nil {
		m.cache.SetTasks(ctx, userID, tasks)
	}

	return GetTasksResponse{Tasks: tasks, Total: len(tasks)}, nil
}

// getSingleTask handles the get-single-task procedure.
func (m *TodoModule) getSingleTask(_ context.Context, req GetSingleTaskRequest, _ *mono.Msg) (GetSingleTaskResponse, error) {
	if perr := requireSession(req.Session); perr != nil {
		return GetSingleTaskResponse{Error: perr}, nil
	}
	if verr := req.Input.Validate(); verr != nil {
		return GetSingleTaskResponse{Error: BadRequest(verr)}, nil
	}

	// TODO: scope the lookup to req.Session.UserID; as written, any
	// authenticated caller can read another user's task by id. Same applies
	// to updateTask and deleteTask below.
	t, err := m.repo.FindByID(req.Input.TaskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return GetSingleTaskResponse{Error: NotFound(req.Input.TaskID)}, nil
		}
		return GetSingleTaskResponse{Error: Internal(err)}, nil
	}

	view := toTaskView(t)
	return GetSingleTaskResponse{Task: &view}, nil
}

// updateTask handles the update-task procedure. Only title and body change.
func (m *TodoModule) updateTask(_ context.Context, req UpdateTaskRequest, _ *mono.Msg) (UpdateTaskResponse, error) {
	if perr := requireSession(req.Session); perr != nil {
		return UpdateTaskResponse{Error: perr}, nil
	}
	if verr := req.Input.Validate(); verr != nil {
		return UpdateTaskResponse{Error: BadRequest(verr)}, nil
	}

	if err := m.repo.UpdateTitleBody(req.Input.TaskID, req.Input.Title, req.Input.Body); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return UpdateTaskResponse{Error: NotFound(req.Input.TaskID)}, nil
		}
		return UpdateTaskResponse{Error: Internal(err)}, nil
	}

	t, err := m.repo.FindByID(req.Input.TaskID)
	if err != nil {
		return UpdateTaskResponse{Error: Internal(err)}, nil
	}

	m.publishUpdated(t)

	view := toTaskView(t)
	return UpdateTaskResponse{Task: &view}, nil
}

// deleteTask handles the delete-task procedure.
func (m *TodoModule) deleteTask(_ context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if perr := requireSession(req.Session); perr != nil {
		return DeleteTaskResponse{Error: perr}, nil
	}
	if verr := req.Input.Validate(); verr != nil {
		return DeleteTaskResponse{Error: BadRequest(verr)}, nil
	}

	t, err := m.repo.FindByID(req.Input.TaskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return DeleteTaskResponse{Error: NotFound(req.Input.TaskID)}, nil
		}
		return DeleteTaskResponse{Error: Internal(err)}, nil
	}

	if err := m.repo.Delete(req.Input.TaskID); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return DeleteTaskResponse{Error: NotFound(req.Input.TaskID)}, nil
		}
		return DeleteTaskResponse{Error: Internal(err)}, nil
	}

	m.publishDeleted(t)

	return DeleteTaskResponse{Deleted: true}, nil
}

func (m *TodoModule) publishCreated(t *task.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskCreatedEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		Body:      t.Body,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
	if err := events.TaskCreatedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[todo] Warning: failed to publish TaskCreated event for task %s: %v", t.ID, err)
	}
}

func (m *TodoModule) publishUpdated(t *task.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskUpdatedEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		Body:      t.Body,
		UserID:    t.UserID,
		UpdatedAt: t.UpdatedAt,
	}
	if err := events.TaskUpdatedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[todo] Warning: failed to publish TaskUpdated event for task %s: %v", t.ID, err)
	}
}

func (m *TodoModule) publishDeleted(t *task.Task) {
	if m.eventBus == nil {
		return
	}
	event := events.TaskDeletedEvent{
		TaskID:    t.ID,
		UserID:    t.UserID,
		DeletedAt: time.Now(),
	}
	if err := events.TaskDeletedV1.Publish(m.eventBus, event, nil); err != nil {
		log.Printf("[todo] Warning: failed to publish TaskDeleted event for task %s: %v", t.ID, err)
	}
}
