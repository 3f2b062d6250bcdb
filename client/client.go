package client

import (
	"context"
	"sync"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/modules/todo"
)

// Client wraps the todo port with a local task list cache and the edit form
// store. Mutations patch the cached list in place and reset the edit state,
// but only when the procedure succeeded; a failed call leaves both untouched.
type Client struct {
	todoPort todo.TodoPort
	store    *Store
	cache    taskListCache

	mu      sync.RWMutex
	session *user.Session
}

// New creates a client over the given todo port.
func New(todoPort todo.TodoPort) *Client {
	return &Client{
		todoPort: todoPort,
		store:    NewStore(),
	}
}

// Store returns the edit form store.
func (c *Client) Store() *Store {
	return c.store
}

// SetSession switches the client to a new session and invalidates the cached
// list, which belonged to the previous identity.
func (c *Client) SetSession(session *user.Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	c.cache.Invalidate()
	c.store.ResetEditedTask()
}

func (c *Client) currentSession() *user.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// Tasks returns the cached task list and whether one has been loaded.
func (c *Client) Tasks() ([]todo.TaskView, bool) {
	return c.cache.Tasks()
}

// LoadTasks fetches the task list and primes the cache.
func (c *Client) LoadTasks(ctx context.Context) ([]todo.TaskView, error) {
	tasks, err := c.todoPort.GetTasks(ctx, c.currentSession())
	if err != nil {
		return nil, err
	}
	c.cache.Set(tasks)
	return tasks, nil
}

// CreateTask creates a task, prepends it to the cached list and clears the
// edit state.
func (c *Client) CreateTask(ctx context.Context, input task.CreateTaskInput) (*todo.TaskView, error) {
	created, err := c.todoPort.CreateTask(ctx, c.currentSession(), input)
	if err != nil {
		return nil, err
	}
	c.cache.Prepend(*created)
	c.store.ResetEditedTask()
	return created, nil
}

// GetSingleTask fetches one task. Reads do not touch the cached list.
func (c *Client) GetSingleTask(ctx context.Context, taskID string) (*todo.TaskView, error) {
	input := task.GetSingleTaskInput{TaskID: taskID}
	return c.todoPort.GetSingleTask(ctx, c.currentSession(), input)
}

// UpdateTask updates a task, swaps it into the cached list and clears the
// edit state.
func (c *Client) UpdateTask(ctx context.Context, input task.UpdateTaskInput) (*todo.TaskView, error) {
	updated, err := c.todoPort.UpdateTask(ctx, c.currentSession(), input)
	if err != nil {
		return nil, err
	}
	c.cache.ReplaceByID(*updated)
	c.store.ResetEditedTask()
	return updated, nil
}

// DeleteTask deletes a task, removes it from the cached list and clears the
// edit state.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	input := task.DeleteTaskInput{TaskID: taskID}
	if err := c.todoPort.DeleteTask(ctx, c.currentSession(), input); err != nil {
		return err
	}
	c.cache.RemoveByID(taskID)
	c.store.ResetEditedTask()
	return nil
}
