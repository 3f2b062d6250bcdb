// Package client provides an in-process client for the task procedures. It
// keeps a local copy of the task list and the edit form state, patching both
// as mutations succeed so callers rarely need to refetch.
package client

import (
	"sync"

	"github.com/example/taskboard/domain/task"
)

// Store holds the edit form state. The zero value of UpdateTaskInput (empty
// TaskID) means no task is being edited.
type Store struct {
	mu         sync.RWMutex
	editedTask task.UpdateTaskInput
}

// NewStore creates a store with no task under edit.
func NewStore() *Store {
	return &Store{}
}

// EditedTask returns the task currently under edit.
func (s *Store) EditedTask() task.UpdateTaskInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editedTask
}

// UpdateEditedTask replaces the task under edit.
func (s *Store) UpdateEditedTask(input task.UpdateTaskInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editedTask = input
}

// ResetEditedTask clears the task under edit back to the empty sentinel.
func (s *Store) ResetEditedTask() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editedTask = task.UpdateTaskInput{}
}

// IsEditing reports whether a task is under edit.
func (s *Store) IsEditing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editedTask.TaskID != ""
}
