package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/timetable"
)

// TestFullWorkflow exercises a full planning session:
// digitize → agenda → block add → gaps shrink → todo round → block delete → reset
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	require.NoError(t, err)
	defer database.Close()

	cfg := config.DefaultConfig()

	// 1. Digitize a timetable image and adopt it
	week := timetable.Week{}
	for _, day := range timetable.Weekdays {
		week[day] = []timetable.Record{}
	}
	week["Monday"] = []timetable.Record{
		{Time: "09:00", End: "10:00", Title: "Algorithms", Type: "L1", Location: "B201"},
		{Time: "14:00", End: "15:00", Title: "Statistics", Type: "L2", Location: "B202"},
	}
	digOut, err := Digitize(context.Background(), database, &fakeExtractor{week: week}, DigitizeInput{
		Data: []byte("image"), Format: "png",
	})
	require.NoError(t, err)
	require.Equal(t, 2, digOut.Records)

	// 2. Agenda reflects the adopted timetable plus derived gaps
	agenda, err := Agenda(database, cfg, AgendaInput{Day: "Monday"})
	require.NoError(t, err)
	require.Len(t, agenda.Entries, 5) // 2 classes + 3 gaps
	require.Equal(t, "Algorithms", agenda.Entries[1].Title)

	// 3. Add a user block into the afternoon stretch
	added, err := BlockAdd(database, BlockAddInput{
		Day: "Monday", Start: "15:30", End: "16:30", Title: "Gym",
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	// Colliding with a class is refused
	_, err = BlockAdd(database, BlockAddInput{
		Day: "Monday", Start: "09:30", End: "10:30", Title: "Clash",
	})
	require.True(t, errors.Is(err, errors.ErrOverlap))

	// 4. Gaps shrink around the block
	gaps, err := Gaps(database, cfg, GapsInput{Day: "Monday"})
	require.NoError(t, err)
	require.Len(t, gaps.Gaps, 4)
	require.Equal(t, "15:00", gaps.Gaps[2].Start)
	require.Equal(t, "15:30", gaps.Gaps[2].End)

	// 5. Todos
	todo, err := TodoAdd(database, TodoAddInput{Text: "review lecture notes"})
	require.NoError(t, err)
	toggled, err := TodoToggle(database, TodoToggleInput{ID: todo.Todo.ID})
	require.NoError(t, err)
	require.True(t, toggled.Todo.Done)
	todos, err := TodoList(database)
	require.NoError(t, err)
	require.Len(t, todos.Items, 1)
	require.Zero(t, todos.Remaining)

	// 6. Delete the block; the afternoon merges back together
	_, err = BlockDelete(database, BlockDeleteInput{ID: added.ID})
	require.NoError(t, err)
	gaps, err = Gaps(database, cfg, GapsInput{Day: "Monday"})
	require.NoError(t, err)
	require.Len(t, gaps.Gaps, 3)

	// 7. Reset the timetable back to the built-in default
	_, err = TimetableReset(database)
	require.NoError(t, err)
	got, err := TimetableGet(database)
	require.NoError(t, err)
	require.Equal(t, SourceDefault, got.Source)
}
