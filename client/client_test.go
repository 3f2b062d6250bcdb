package client

import (
	"context"
	"errors"
	"testing"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/domain/user"
	"github.com/example/taskboard/modules/todo"
)

// fakeTodoPort implements todo.TodoPort over an in-memory slice.
type fakeTodoPort struct {
	tasks []todo.TaskView
	err   error
}

func (f *fakeTodoPort) CreateTask(_ context.Context, session *user.Session, input task.CreateTaskInput) (*todo.TaskView, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := todo.TaskView{ID: task.NewID(), Title: input.Title, Body: input.Body, UserID: session.UserID}
	f.tasks = append([]todo.TaskView{created}, f.tasks...)
	return &created, nil
}

func (f *fakeTodoPort) GetTasks(_ context.Context, _ *user.Session) ([]todo.TaskView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]todo.TaskView(nil), f.tasks...), nil
}

func (f *fakeTodoPort) GetSingleTask(_ context.Context, _ *user.Session, input task.GetSingleTaskInput) (*todo.TaskView, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tasks {
		if t.ID == input.TaskID {
			return &t, nil
		}
	}
	return nil, todo.NotFound(input.TaskID)
}

func (f *fakeTodoPort) UpdateTask(_ context.Context, _ *user.Session, input task.UpdateTaskInput) (*todo.TaskView, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == input.TaskID {
			f.tasks[i].Title = input.Title
			f.tasks[i].Body = input.Body
			return &f.tasks[i], nil
		}
	}
	return nil, todo.NotFound(input.TaskID)
}

func (f *fakeTodoPort) DeleteTask(_ context.Context, _ *user.Session, input task.DeleteTaskInput) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == input.TaskID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return todo.NotFound(input.TaskID)
}

func newTestClient(port *fakeTodoPort) *Client {
	c := New(port)
	c.SetSession(&user.Session{UserID: "user-1", Name: "Test User"})
	return c
}

func TestClient_LoadTasks(t *testing.T) {
	port := &fakeTodoPort{tasks: []todo.TaskView{view("a"), view("b")}}
	c := newTestClient(port)

	if _, loaded := c.Tasks(); loaded {
		t.Fatal("cache should start unloaded")
	}

	tasks, err := c.LoadTasks(context.Background())
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	cached, loaded := c.Tasks()
	if !loaded || len(cached) != 2 {
		t.Errorf("expected loaded cache with 2 tasks, got loaded=%v len=%d", loaded, len(cached))
	}
}

func TestClient_CreateTask_PatchesCacheAndResetsEdit(t *testing.T) {
	port := &fakeTodoPort{tasks: []todo.TaskView{view("existing")}}
	c := newTestClient(port)
	if _, err := c.LoadTasks(context.Background()); err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	c.Store().UpdateEditedTask(task.UpdateTaskInput{TaskID: task.NewID(), Title: "draft", Body: "draft body"})

	created, err := c.CreateTask(context.Background(), task.CreateTaskInput{Title: "Buy milk", Body: "2 liters"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	cached, _ := c.Tasks()
	if len(cached) != 2 || cached[0].ID != created.ID {
		t.Errorf("expected new task prepended, got %+v", cached)
	}
	if c.Store().IsEditing() {
		t.Error("expected edit state reset after successful create")
	}
}

func TestClient_UpdateTask_PatchesCacheAndResetsEdit(t *testing.T) {
	existing := view("existing")
	port := &fakeTodoPort{tasks: []todo.TaskView{existing, view("other")}}
	c := newTestClient(port)
	if _, err := c.LoadTasks(context.Background()); err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}

	input := task.UpdateTaskInput{TaskID: existing.ID, Title: "New title", Body: "new body text"}
	c.Store().UpdateEditedTask(input)

	updated, err := c.UpdateTask(context.Background(), input)
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if updated.Title != "New title" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	cached, _ := c.Tasks()
	if cached[0].Title != "New title" {
		t.Errorf("cache not patched: %+v", cached)
	}
	if len(cached) != 2 {
		t.Errorf("update changed list length: %d", len(cached))
	}
	if c.Store().IsEditing() {
		t.Error("expected edit state reset after successful update")
	}
}

func TestClient_DeleteTask_PatchesCache(t *testing.T) {
	doomed := view("doomed")
	port := &fakeTodoPort{tasks: []todo.TaskView{doomed, view("survivor")}}
	c := newTestClient(port)
	if _, err := c.LoadTasks(context.Background()); err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}

	if err := c.DeleteTask(context.Background(), doomed.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	cached, _ := c.Tasks()
	if len(cached) != 1 || cached[0].ID == doomed.ID {
		t.Errorf("deleted task still cached: %+v", cached)
	}
}

// A failed mutation must leave both the cached list and the edit state alone.
func TestClient_FailedMutationLeavesStateUntouched(t *testing.T) {
	existing := view("existing")
	port := &fakeTodoPort{tasks: []todo.TaskView{existing}}
	c := newTestClient(port)
	if _, err := c.LoadTasks(context.Background()); err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}

	edit := task.UpdateTaskInput{TaskID: existing.ID, Title: "Draft", Body: "draft body"}
	c.Store().UpdateEditedTask(edit)

	port.err = errors.New("backend down")

	if _, err := c.CreateTask(context.Background(), task.CreateTaskInput{Title: "X", Body: "never lands"}); err == nil {
		t.Fatal("expected create to fail")
	}
	if _, err := c.UpdateTask(context.Background(), edit); err == nil {
		t.Fatal("expected update to fail")
	}
	if err := c.DeleteTask(context.Background(), existing.ID); err == nil {
		t.Fatal("expected delete to fail")
	}

	cached, loaded := c.Tasks()
	if !loaded || len(cached) != 1 || cached[0].ID != existing.ID || cached[0].Title != "existing" {
		t.Errorf("failed mutations changed the cached list: %+v", cached)
	}
	if got := c.Store().EditedTask(); got != edit {
		t.Errorf("failed mutations changed the edit state: %+v", got)
	}
}

func TestClient_SetSessionInvalidatesCache(t *testing.T) {
	port := &fakeTodoPort{tasks: []todo.TaskView{view("a")}}
	c := newTestClient(port)
	if _, err := c.LoadTasks(context.Background()); err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	c.Store().UpdateEditedTask(task.UpdateTaskInput{TaskID: task.NewID(), Title: "Draft", Body: "draft body"})

	c.SetSession(&user.Session{UserID: "user-2", Name: "Someone Else"})

	if _, loaded := c.Tasks(); loaded {
		t.Error("expected cache invalidated on session change")
	}
	if c.Store().IsEditing() {
		t.Error("expected edit state reset on session change")
	}
}

func TestClient_GetSingleTask(t *testing.T) {
	existing := view("existing")
	port := &fakeTodoPort{tasks: []todo.TaskView{existing}}
	c := newTestClient(port)

	found, err := c.GetSingleTask(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("GetSingleTask() error = %v", err)
	}
	if found.ID != existing.ID {
		t.Errorf("expected task %s, got %s", existing.ID, found.ID)
	}

	var procErr *todo.ProcedureError
	_, err = c.GetSingleTask(context.Background(), task.NewID())
	if !errors.As(err, &procErr) || procErr.Code != todo.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
