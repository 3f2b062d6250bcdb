package task

import "time"

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID        string    `gorm:"primarykey;size:25" json:"id"`
	Title     string    `gorm:"size:20;not null" json:"title"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "tasks"
}
