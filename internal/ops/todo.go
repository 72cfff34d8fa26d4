package ops

import (
	"database/sql"
	"strings"
	"time"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
)

// TodoItem is the JSON shape of a to-do.
type TodoItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// TodoAddInput contains parameters for the TodoAdd operation.
type TodoAddInput struct {
	Text string
}

// TodoAddOutput contains the result of the TodoAdd operation.
type TodoAddOutput struct {
	Todo TodoItem `json:"todo"`
}

// TodoAdd creates a to-do item.
func TodoAdd(database *sql.DB, input TodoAddInput) (*TodoAddOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}

	now := time.Now().Unix()
	todo := &db.Todo{
		ID:        newID(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.InsertTodo(database, todo); err != nil {
		return nil, err
	}

	return &TodoAddOutput{Todo: TodoItem{ID: todo.ID, Text: todo.Text}}, nil
}

// TodoToggleInput contains parameters for the TodoToggle operation.
type TodoToggleInput struct {
	ID string
}

// TodoToggleOutput contains the result of the TodoToggle operation.
type TodoToggleOutput struct {
	Todo TodoItem `json:"todo"`
}

// TodoToggle flips a to-do's done state.
func TodoToggle(database *sql.DB, input TodoToggleInput) (*TodoToggleOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	todo, err := db.GetTodo(database, id)
	if err != nil {
		return nil, err
	}
	done := !todo.Done
	if err := db.SetTodoDone(database, id, done, time.Now().Unix()); err != nil {
		return nil, err
	}

	return &TodoToggleOutput{Todo: TodoItem{ID: id, Text: todo.Text, Done: done}}, nil
}

// TodoDeleteInput contains parameters for the TodoDelete operation.
type TodoDeleteInput struct {
	ID string
}

// TodoDeleteOutput contains the result of the TodoDelete operation.
type TodoDeleteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// TodoDelete removes a to-do by ID.
func TodoDelete(database *sql.DB, input TodoDeleteInput) (*TodoDeleteOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	if err := db.DeleteTodo(database, id); err != nil {
		return nil, err
	}
	return &TodoDeleteOutput{ID: id, Deleted: true}, nil
}

// TodoListOutput contains the result of the TodoList operation.
type TodoListOutput struct {
	Items     []TodoItem `json:"items"`
	Remaining int        `json:"remaining"`
}

// TodoList returns all to-dos in creation order, plus a count of the
// ones still open.
func TodoList(database *sql.DB) (*TodoListOutput, error) {
	rows, err := db.ListTodos(database)
	if err != nil {
		return nil, err
	}

	items := make([]TodoItem, len(rows))
	remaining := 0
	for i, t := range rows {
		items[i] = TodoItem{ID: t.ID, Text: t.Text, Done: t.Done}
		if !t.Done {
			remaining++
		}
	}

	return &TodoListOutput{Items: items, Remaining: remaining}, nil
}
