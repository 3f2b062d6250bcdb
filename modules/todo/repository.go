package todo

import (
	"errors"
	"fmt"

	"github.com/example/taskboard/domain/task"
	"gorm.io/gorm"
)

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database.
func (r *Repository) Create(t *task.Task) error {
	if err := r.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *Repository) FindByID(id string) (*task.Task, error) {
	var t task.Task
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &t, nil
}

// FindByUserID retrieves all tasks owned by the given user, newest first.
// Ties on created_at are broken by id so the order stays consistent.
func (r *Repository) FindByUserID(userID string) ([]*task.Task, error) {
	var tasks []*task.Task
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTitleBody updates the title and body of an existing task. The owner,
// id and created_at never change.
func (r *Repository) UpdateTitleBody(id, title, body string) error {
	result := r.db.Model(&task.Task{}).Where("id = ?", id).
		Updates(map[string]any{"title": title, "body": body})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by ID.
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&task.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
