package todo

import (
	"errors"
	"testing"
	"time"

	"github.com/example/taskboard/domain/task"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&task.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestTask(userID, title, body string) *task.Task {
	return &task.Task{
		ID:     task.NewID(),
		Title:  title,
		Body:   body,
		UserID: userID,
	}
}

func TestRepository_CreateAndFindByID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	created := newTestTask("user-1", "Buy milk", "2 liters, semi-skimmed")
	if err := repo.Create(created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != "Buy milk" {
		t.Errorf("expected title %q, got %q", "Buy milk", found.Title)
	}
	if found.UserID != "user-1" {
		t.Errorf("expected user id %q, got %q", "user-1", found.UserID)
	}
	if found.CreatedAt.IsZero() || found.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on create")
	}
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.FindByID(task.NewID())
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("FindByID() error = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_FindByUserID_OrderAndScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	// Three tasks for user-1 at distinct times, one for user-2.
	base := time.Now().Add(-time.Hour)
	ids := make([]string, 3)
	for i := 0; i < 3; i++ {
		tk := newTestTask("user-1", "Task", "body of the task")
		tk.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		tk.UpdatedAt = tk.CreatedAt
		if err := db.Create(tk).Error; err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}
		ids[i] = tk.ID
	}
	if err := repo.Create(newTestTask("user-2", "Other", "someone else's task")); err != nil {
		t.Fatalf("failed to seed other user's task: %v", err)
	}

	tasks, err := repo.FindByUserID("user-1")
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	// Newest first.
	for i, wantID := range []string{ids[2], ids[1], ids[0]} {
		if tasks[i].ID != wantID {
			t.Errorf("position %d: expected id %s, got %s", i, wantID, tasks[i].ID)
		}
	}
}

func TestRepository_FindByUserID_Empty(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	tasks, err := repo.FindByUserID("user-with-no-tasks")
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty result, got %d tasks", len(tasks))
	}
}

func TestRepository_UpdateTitleBody(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	created := newTestTask("user-1", "Old title", "old body text")
	if err := repo.Create(created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdateTitleBody(created.ID, "New title", "new body text"); err != nil {
		t.Fatalf("UpdateTitleBody() error = %v", err)
	}

	found, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Title != "New title" || found.Body != "new body text" {
		t.Errorf("update not applied: got %q / %q", found.Title, found.Body)
	}
	if found.UserID != "user-1" {
		t.Errorf("owner changed on update: %q", found.UserID)
	}
}

func TestRepository_UpdateTitleBody_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	err := repo.UpdateTitleBody(task.NewID(), "Title", "body text")
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("UpdateTitleBody() error = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	created := newTestTask("user-1", "Doomed", "soon to be gone")
	if err := repo.Create(created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}

	if err := repo.Delete(created.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("second delete: error = %v, want ErrTaskNotFound", err)
	}
}
