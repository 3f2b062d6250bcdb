package client

import (
	"sync"

	"github.com/example/taskboard/modules/todo"
)

// taskListCache is the client's local copy of the task list. Patches apply
// only once a list has been loaded; before that there is nothing to patch and
// the next load fetches fresh data anyway.
type taskListCache struct {
	mu     sync.RWMutex
	tasks  []todo.TaskView
	loaded bool
}

// Tasks returns a copy of the cached list and whether one has been loaded.
func (c *taskListCache) Tasks() ([]todo.TaskView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	out := make([]todo.TaskView, len(c.tasks))
	copy(out, c.tasks)
	return out, true
}

// Set replaces the cached list.
func (c *taskListCache) Set(tasks []todo.TaskView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = tasks
	c.loaded = true
}

// Prepend inserts a task at the front of the cached list.
func (c *taskListCache) Prepend(t todo.TaskView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return
	}
	c.tasks = append([]todo.TaskView{t}, c.tasks...)
}

// ReplaceByID swaps the cached entry with the same id for the given task.
func (c *taskListCache) ReplaceByID(t todo.TaskView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return
	}
	for i := range c.tasks {
		if c.tasks[i].ID == t.ID {
			c.tasks[i] = t
			return
		}
	}
}

// RemoveByID drops the cached entry with the given id.
func (c *taskListCache) RemoveByID(taskID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return
	}
	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	c.tasks = kept
}

// Invalidate forgets the cached list.
func (c *taskListCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = nil
	c.loaded = false
}
