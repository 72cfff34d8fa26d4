package ops

import (
	"testing"

	"github.com/pranavb/lockin/internal/errors"
)

func TestTodoLifecycle(t *testing.T) {
	database, _ := testEnv(t)

	added, err := TodoAdd(database, TodoAddInput{Text: "  finish problem set  "})
	if err != nil {
		t.Fatalf("TodoAdd failed: %v", err)
	}
	if added.Todo.Text != "finish problem set" {
		t.Errorf("Text = %q, want trimmed", added.Todo.Text)
	}
	if added.Todo.Done {
		t.Error("new todo is done")
	}

	toggled, err := TodoToggle(database, TodoToggleInput{ID: added.Todo.ID})
	if err != nil {
		t.Fatalf("TodoToggle failed: %v", err)
	}
	if !toggled.Todo.Done {
		t.Error("Done = false after toggle")
	}

	toggled, err = TodoToggle(database, TodoToggleInput{ID: added.Todo.ID})
	if err != nil {
		t.Fatalf("second TodoToggle failed: %v", err)
	}
	if toggled.Todo.Done {
		t.Error("Done = true after second toggle")
	}

	deleted, err := TodoDelete(database, TodoDeleteInput{ID: added.Todo.ID})
	if err != nil {
		t.Fatalf("TodoDelete failed: %v", err)
	}
	if !deleted.Deleted {
		t.Error("Deleted = false")
	}
}

func TestTodoList_RemainingCount(t *testing.T) {
	database, _ := testEnv(t)

	first, _ := TodoAdd(database, TodoAddInput{Text: "one"})
	TodoAdd(database, TodoAddInput{Text: "two"})
	TodoAdd(database, TodoAddInput{Text: "three"})

	if _, err := TodoToggle(database, TodoToggleInput{ID: first.Todo.ID}); err != nil {
		t.Fatalf("TodoToggle failed: %v", err)
	}

	list, err := TodoList(database)
	if err != nil {
		t.Fatalf("TodoList failed: %v", err)
	}
	if len(list.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(list.Items))
	}
	if list.Remaining != 2 {
		t.Errorf("Remaining = %d, want 2", list.Remaining)
	}
	if list.Items[0].Text != "one" {
		t.Errorf("creation order lost: %+v", list.Items)
	}
}

func TestTodo_Validation(t *testing.T) {
	database, _ := testEnv(t)

	if _, err := TodoAdd(database, TodoAddInput{Text: "   "}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("blank text = %v, want INVALID_REQUEST", err)
	}
	if _, err := TodoToggle(database, TodoToggleInput{ID: "missing"}); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("toggle missing = %v, want NOT_FOUND", err)
	}
	if _, err := TodoDelete(database, TodoDeleteInput{ID: "missing"}); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("delete missing = %v, want NOT_FOUND", err)
	}
}
