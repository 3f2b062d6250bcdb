package client

import (
	"testing"

	"github.com/example/taskboard/domain/task"
	"github.com/example/taskboard/modules/todo"
)

func view(title string) todo.TaskView {
	return todo.TaskView{ID: task.NewID(), Title: title, Body: "body of " + title}
}

func TestTaskListCache_PatchBeforeLoadIsNoop(t *testing.T) {
	var cache taskListCache

	cache.Prepend(view("orphan"))
	cache.ReplaceByID(view("orphan"))
	cache.RemoveByID(task.NewID())

	if _, loaded := cache.Tasks(); loaded {
		t.Error("patches before Set must not mark the cache loaded")
	}
}

func TestTaskListCache_Prepend(t *testing.T) {
	var cache taskListCache
	cache.Set([]todo.TaskView{view("old")})

	newest := view("new")
	cache.Prepend(newest)

	tasks, loaded := cache.Tasks()
	if !loaded {
		t.Fatal("expected loaded cache")
	}
	if len(tasks) != 2 || tasks[0].ID != newest.ID {
		t.Errorf("expected newest task first, got %+v", tasks)
	}
}

func TestTaskListCache_ReplaceByID(t *testing.T) {
	var cache taskListCache
	a, b := view("a"), view("b")
	cache.Set([]todo.TaskView{a, b})

	updated := b
	updated.Title = "b updated"
	cache.ReplaceByID(updated)

	tasks, _ := cache.Tasks()
	if tasks[1].Title != "b updated" {
		t.Errorf("replace not applied: %+v", tasks)
	}
	if tasks[0].ID != a.ID || tasks[0].Title != "a" {
		t.Errorf("unrelated entry changed: %+v", tasks[0])
	}

	// Unknown ids leave the list alone.
	cache.ReplaceByID(view("stranger"))
	tasks, _ = cache.Tasks()
	if len(tasks) != 2 {
		t.Errorf("replace of unknown id changed list length: %d", len(tasks))
	}
}

func TestTaskListCache_RemoveByID(t *testing.T) {
	var cache taskListCache
	a, b, c := view("a"), view("b"), view("c")
	cache.Set([]todo.TaskView{a, b, c})

	cache.RemoveByID(b.ID)

	tasks, _ := cache.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks after removal, got %d", len(tasks))
	}
	if tasks[0].ID != a.ID || tasks[1].ID != c.ID {
		t.Errorf("unexpected survivors: %+v", tasks)
	}
}

func TestTaskListCache_TasksReturnsCopy(t *testing.T) {
	var cache taskListCache
	cache.Set([]todo.TaskView{view("a")})

	tasks, _ := cache.Tasks()
	tasks[0].Title = "mutated"

	fresh, _ := cache.Tasks()
	if fresh[0].Title == "mutated" {
		t.Error("Tasks() must return a copy, not the backing slice")
	}
}

func TestTaskListCache_Invalidate(t *testing.T) {
	var cache taskListCache
	cache.Set([]todo.TaskView{view("a")})

	cache.Invalidate()

	if _, loaded := cache.Tasks(); loaded {
		t.Error("expected unloaded cache after Invalidate")
	}
}
