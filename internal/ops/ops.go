package ops

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timetable"
)

// EntryView is the JSON shape of a schedule entry returned by the read
// operations. Times are "HH:MM" strings at this boundary.
type EntryView struct {
	ID       string `json:"id,omitempty"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
	Location string `json:"location,omitempty"`
	Color    string `json:"color,omitempty"`
	Note     string `json:"note,omitempty"`
	Minutes  int    `json:"minutes"`
}

func viewOf(e schedule.Entry) EntryView {
	return EntryView{
		ID:       e.ID,
		Start:    e.Start.Clock(),
		End:      e.End.Clock(),
		Title:    e.Title,
		Kind:     string(e.Kind),
		Label:    e.Label,
		Location: e.Location,
		Color:    e.Color,
		Note:     e.Note,
		Minutes:  e.Duration(),
	}
}

func viewsOf(entries []schedule.Entry) []EntryView {
	views := make([]EntryView, len(entries))
	for i, e := range entries {
		views[i] = viewOf(e)
	}
	return views
}

// newID generates a new ULID for blocks and todos.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// loadWeek returns the stored timetable, falling back to the built-in
// default when nothing has been stored yet.
func loadWeek(database *sql.DB) (timetable.Week, error) {
	week, found, err := db.LoadTimetable(database)
	if err != nil {
		return nil, err
	}
	if !found {
		return timetable.Default(), nil
	}
	return week, nil
}

// blockEntry converts a stored block row into a schedule entry.
func blockEntry(b db.Block) schedule.Entry {
	return schedule.Entry{
		Interval: schedule.Interval{
			Start: schedule.TimeOfDay(b.StartMin),
			End:   schedule.TimeOfDay(b.EndMin),
		},
		Title: b.Title,
		Kind:  schedule.KindUserBlock,
		ID:    b.ID,
		Color: b.Color,
		Note:  b.Note,
	}
}

// blockEntries loads a day's user blocks as schedule entries.
func blockEntries(database *sql.DB, day string) ([]schedule.Entry, error) {
	rows, err := db.ListBlocks(database, day)
	if err != nil {
		return nil, err
	}
	entries := make([]schedule.Entry, len(rows))
	for i, b := range rows {
		entries[i] = blockEntry(b)
	}
	return entries, nil
}

// checkFixedOverlap rejects an interval that collides with any fixed
// timetable entry on the day. Overlap between user blocks is allowed;
// display resolves those first-match-wins.
func checkFixedOverlap(fixed []schedule.Entry, iv schedule.Interval, day string) error {
	for _, f := range fixed {
		if iv.Overlaps(f.Interval) {
			return errors.NewOverlap(day, f.Title)
		}
	}
	return nil
}
