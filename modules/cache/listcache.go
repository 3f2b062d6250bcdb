package cache

import (
	"context"
	"log"

	"github.com/example/taskboard/modules/todo"
)

// listKey returns the cache key for a user's task list.
func listKey(userID string) string {
	return "tasks:" + userID
}

// TaskListCache adapts Cache to the todo module's list cache port. Cache
// failures are logged and treated as misses so reads always fall through to
// the database.
type TaskListCache struct {
	cache *Cache
}

var _ todo.ListCache = (*TaskListCache)(nil)

// NewTaskListCache creates a task list cache over the given Cache.
func NewTaskListCache(c *Cache) *TaskListCache {
	return &TaskListCache{cache: c}
}

// GetTasks returns the cached task list for a user, if present.
func (l *TaskListCache) GetTasks(ctx context.Context, userID string) ([]todo.TaskView, bool) {
	var tasks []todo.TaskView
	found, err := l.cache.Get(ctx, listKey(userID), &tasks)
	if err != nil {
		log.Printf("[cache] Warning: task list get failed for user %s: %v", userID, err)
		return nil, false
	}
	return tasks, found
}

// SetTasks stores the task list for a user.
func (l *TaskListCache) SetTasks(ctx context.Context, userID string, tasks []todo.TaskView) {
	if err := l.cache.Set(ctx, listKey(userID), tasks); err != nil {
		log.Printf("[cache] Warning: task list set failed for user %s: %v", userID, err)
	}
}

// Invalidate drops the cached task list for a user.
func (l *TaskListCache) Invalidate(ctx context.Context, userID string) {
	if err := l.cache.Delete(ctx, listKey(userID)); err != nil {
		log.Printf("[cache] Warning: task list invalidation failed for user %s: %v", userID, err)
	}
}
