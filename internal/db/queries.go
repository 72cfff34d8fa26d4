package db

import (
	"database/sql"
	"fmt"

	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/timetable"
)

// Block is a stored user block row. Times are minutes since midnight:
// blocks are validated at the ops boundary, so rows carry the computed
// form rather than the boundary HH:MM strings.
type Block struct {
	ID        string
	Day       string
	StartMin  int
	EndMin    int
	Title     string
	Note      string
	Color     string
	CreatedAt int64
	UpdatedAt int64
}

// Todo is a stored to-do row.
type Todo struct {
	ID        string
	Text      string
	Done      bool
	CreatedAt int64
	UpdatedAt int64
}

// InsertBlock stores a new user block.
func InsertBlock(database *sql.DB, b *Block) error {
	_, err := database.Exec(`
		INSERT INTO blocks (id, day, start_min, end_min, title, note, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Day, b.StartMin, b.EndMin, b.Title, b.Note, b.Color, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("insert block: %w", err))
	}
	return nil
}

// UpdateBlock rewrites an existing block's mutable fields.
func UpdateBlock(database *sql.DB, b *Block) error {
	result, err := database.Exec(`
		UPDATE blocks SET day = ?, start_min = ?, end_min = ?, title = ?, note = ?, color = ?, updated_at = ?
		WHERE id = ?`,
		b.Day, b.StartMin, b.EndMin, b.Title, b.Note, b.Color, b.UpdatedAt, b.ID)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("update block: %w", err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if n == 0 {
		return errors.NewNotFound("block", b.ID)
	}
	return nil
}

// DeleteBlock removes a block by ID.
func DeleteBlock(database *sql.DB, id string) error {
	result, err := database.Exec(`DELETE FROM blocks WHERE id = ?`, id)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("delete block: %w", err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if n == 0 {
		return errors.NewNotFound("block", id)
	}
	return nil
}

// GetBlock fetches one block by ID.
func GetBlock(database *sql.DB, id string) (*Block, error) {
	b := &Block{}
	err := database.QueryRow(`
		SELECT id, day, start_min, end_min, title, note, color, created_at, updated_at
		FROM blocks WHERE id = ?`, id).
		Scan(&b.ID, &b.Day, &b.StartMin, &b.EndMin, &b.Title, &b.Note, &b.Color, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("block", id)
	}
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("get block: %w", err))
	}
	return b, nil
}

// ListBlocks returns a day's blocks ordered by start time, then
// creation time for same-minute starts.
func ListBlocks(database *sql.DB, day string) ([]Block, error) {
	rows, err := database.Query(`
		SELECT id, day, start_min, end_min, title, note, color, created_at, updated_at
		FROM blocks WHERE day = ? ORDER BY start_min, created_at`, day)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("list blocks: %w", err))
	}
	defer rows.Close()
	return scanBlocks(rows)
}

// ListAllBlocks returns every stored block, weekday order preserved by
// the caller.
func ListAllBlocks(database *sql.DB) ([]Block, error) {
	rows, err := database.Query(`
		SELECT id, day, start_min, end_min, title, note, color, created_at, updated_at
		FROM blocks ORDER BY day, start_min, created_at`)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("list all blocks: %w", err))
	}
	defer rows.Close()
	return scanBlocks(rows)
}

func scanBlocks(rows *sql.Rows) ([]Block, error) {
	var blocks []Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.ID, &b.Day, &b.StartMin, &b.EndMin, &b.Title, &b.Note, &b.Color, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return blocks, nil
}

// InsertTodo stores a new to-do item.
func InsertTodo(database *sql.DB, t *Todo) error {
	_, err := database.Exec(`
		INSERT INTO todos (id, text, done, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Text, t.Done, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("insert todo: %w", err))
	}
	return nil
}

// SetTodoDone flips a to-do's done flag.
func SetTodoDone(database *sql.DB, id string, done bool, updatedAt int64) error {
	result, err := database.Exec(`UPDATE todos SET done = ?, updated_at = ? WHERE id = ?`, done, updatedAt, id)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("update todo: %w", err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if n == 0 {
		return errors.NewNotFound("todo", id)
	}
	return nil
}

// DeleteTodo removes a to-do by ID.
func DeleteTodo(database *sql.DB, id string) error {
	result, err := database.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("delete todo: %w", err))
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if n == 0 {
		return errors.NewNotFound("todo", id)
	}
	return nil
}

// GetTodo fetches one to-do by ID.
func GetTodo(database *sql.DB, id string) (*Todo, error) {
	t := &Todo{}
	err := database.QueryRow(`
		SELECT id, text, done, created_at, updated_at FROM todos WHERE id = ?`, id).
		Scan(&t.ID, &t.Text, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("todo", id)
	}
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("get todo: %w", err))
	}
	return t, nil
}

// ListTodos returns all to-dos in creation order.
func ListTodos(database *sql.DB) ([]Todo, error) {
	rows, err := database.Query(`
		SELECT id, text, done, created_at, updated_at FROM todos ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.NewInternal(fmt.Errorf("list todos: %w", err))
	}
	defer rows.Close()

	var todos []Todo
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.Done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, errors.NewInternal(err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return todos, nil
}

// ReplaceTimetable swaps the stored fixed timetable wholesale. The
// replace is transactional: a failed adoption leaves the previous
// timetable untouched.
func ReplaceTimetable(database *sql.DB, week timetable.Week) error {
	tx, err := database.Begin()
	if err != nil {
		return errors.NewInternal(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM timetable`); err != nil {
		return errors.NewInternal(fmt.Errorf("clear timetable: %w", err))
	}

	for _, day := range timetable.Weekdays {
		for i, r := range week[day] {
			_, err := tx.Exec(`
				INSERT INTO timetable (day, position, start, end, title, type, location)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				day, i, r.Time, r.End, r.Title, r.Type, r.Location)
			if err != nil {
				return errors.NewInternal(fmt.Errorf("insert timetable row: %w", err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

// ClearTimetable removes any stored timetable so reads fall back to the
// built-in default.
func ClearTimetable(database *sql.DB) error {
	if _, err := database.Exec(`DELETE FROM timetable`); err != nil {
		return errors.NewInternal(fmt.Errorf("clear timetable: %w", err))
	}
	return nil
}

// LoadTimetable reads the stored timetable. found is false when nothing
// has been stored, in which case callers fall back to the built-in
// default.
func LoadTimetable(database *sql.DB) (week timetable.Week, found bool, err error) {
	rows, err := database.Query(`
		SELECT day, start, end, title, type, location
		FROM timetable ORDER BY day, position`)
	if err != nil {
		return nil, false, errors.NewInternal(fmt.Errorf("load timetable: %w", err))
	}
	defer rows.Close()

	week = make(timetable.Week)
	for _, day := range timetable.Weekdays {
		week[day] = []timetable.Record{}
	}

	for rows.Next() {
		var day string
		var r timetable.Record
		if err := rows.Scan(&day, &r.Time, &r.End, &r.Title, &r.Type, &r.Location); err != nil {
			return nil, false, errors.NewInternal(err)
		}
		if _, ok := week[day]; !ok {
			// Unknown day key from an old or corrupt row: drop it.
			continue
		}
		week[day] = append(week[day], r)
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, false, errors.NewInternal(err)
	}
	return week, found, nil
}

// GetSetting reads a settings value. A missing key is not an error; ok
// reports presence.
func GetSetting(database *sql.DB, key string) (value string, ok bool, err error) {
	err = database.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewInternal(fmt.Errorf("get setting: %w", err))
	}
	return value, true, nil
}

// SetSetting upserts a settings value.
func SetSetting(database *sql.DB, key, value string) error {
	_, err := database.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("set setting: %w", err))
	}
	return nil
}
