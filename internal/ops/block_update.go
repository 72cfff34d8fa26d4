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

// BlockUpdateInput contains parameters for the BlockUpdate operation.
// Empty strings keep the stored value; Note and Color are pointers so
// they can be cleared explicitly.
type BlockUpdateInput struct {
	ID    string
	Day   string
	Start string
	End   string
	Title string
	Note  *string
	Color *string
}

// BlockUpdateOutput contains the result of the BlockUpdate operation.
type BlockUpdateOutput struct {
	ID    string    `json:"id"`
	Day   string    `json:"day"`
	Block EntryView `json:"block"`
}

// BlockUpdate edits an existing user block. The resulting interval is
// re-validated against the fixed timetable the same way BlockAdd
// validates a new one.
func BlockUpdate(database *sql.DB, input BlockUpdateInput) (*BlockUpdateOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	block, err := db.GetBlock(database, id)
	if err != nil {
		return nil, err
	}

	if input.Day != "" {
		day, err := timetable.NormalizeDay(input.Day)
		if err != nil {
			return nil, err
		}
		block.Day = day
	}
	if input.Title != "" {
		block.Title = strings.TrimSpace(input.Title)
	}
	if input.Start != "" {
		start, err := schedule.ParseClock(input.Start)
		if err != nil {
			return nil, err
		}
		block.StartMin = int(start)
	}
	if input.End != "" {
		end, err := schedule.ParseClock(input.End)
		if err != nil {
			return nil, err
		}
		block.EndMin = int(end)
	}
	if input.Note != nil {
		block.Note = *input.Note
	}
	if input.Color != nil {
		block.Color = *input.Color
	}

	iv, err := schedule.NewInterval(schedule.TimeOfDay(block.StartMin), schedule.TimeOfDay(block.EndMin))
	if err != nil {
		return nil, err
	}

	week, err := loadWeek(database)
	if err != nil {
		return nil, err
	}
	if err := checkFixedOverlap(week.Entries(block.Day), iv, block.Day); err != nil {
		return nil, err
	}

	block.UpdatedAt = time.Now().Unix()
	if err := db.UpdateBlock(database, block); err != nil {
		return nil, err
	}

	return &BlockUpdateOutput{
		ID:    block.ID,
		Day:   block.Day,
		Block: viewOf(blockEntry(*block)),
	}, nil
}
