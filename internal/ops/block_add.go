package ops

import (
	"database/sql"
	"strings"
	"time"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timetable"
)

// BlockAddInput contains parameters for the BlockAdd operation.
type BlockAddInput struct {
	Day   string
	Start string // "HH:MM"
	End   string // "HH:MM"
	Title string
	Note  string
	Color string
}

// BlockAddOutput contains the result of the BlockAdd operation.
type BlockAddOutput struct {
	ID    string    `json:"id"`
	Day   string    `json:"day"`
	Block EntryView `json:"block"`
}

// BlockAdd creates a user block. The interval must be well-formed and
// must not collide with a fixed timetable entry; collisions between
// user blocks are allowed.
func BlockAdd(database *sql.DB, input BlockAddInput) (*BlockAddOutput, error) {
	day, err := timetable.NormalizeDay(input.Day)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}

	start, err := schedule.ParseClock(input.Start)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseClock(input.End)
	if err != nil {
		return nil, err
	}
	iv, err := schedule.NewInterval(start, end)
	if err != nil {
		return nil, err
	}

	week, err := loadWeek(database)
	if err != nil {
		return nil, err
	}
	if err := checkFixedOverlap(week.Entries(day), iv, day); err != nil {
		return nil, err
	}

	now := time.Now().Unix()
	block := &db.Block{
		ID:        newID(),
		Day:       day,
		StartMin:  int(iv.Start),
		EndMin:    int(iv.End),
		Title:     title,
		Note:      input.Note,
		Color:     input.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.InsertBlock(database, block); err != nil {
		return nil, err
	}

	return &BlockAddOutput{
		ID:    block.ID,
		Day:   day,
		Block: viewOf(blockEntry(*block)),
	}, nil
}
