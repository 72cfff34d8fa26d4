package ops

import (
	"database/sql"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timetable"
)

// BlockListInput contains parameters for the BlockList operation.
type BlockListInput struct {
	Day string // empty lists every day
}

// BlockItem is one listed user block with its weekday attached.
type BlockItem struct {
	ID    string `json:"id"`
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
	Note  string `json:"note,omitempty"`
	Color string `json:"color,omitempty"`
}

// BlockListOutput contains the result of the BlockList operation.
type BlockListOutput struct {
	Items []BlockItem `json:"items"`
	Total int         `json:"total"`
}

// BlockList returns stored user blocks, for one day or the whole week.
func BlockList(database *sql.DB, input BlockListInput) (*BlockListOutput, error) {
	var rows []db.Block
	var err error
	if input.Day == "" {
		rows, err = db.ListAllBlocks(database)
	} else {
		var day string
		day, err = timetable.NormalizeDay(input.Day)
		if err != nil {
			return nil, err
		}
		rows, err = db.ListBlocks(database, day)
	}
	if err != nil {
		return nil, err
	}

	items := make([]BlockItem, len(rows))
	for i, b := range rows {
		items[i] = BlockItem{
			ID:    b.ID,
			Day:   b.Day,
			Start: schedule.TimeOfDay(b.StartMin).Clock(),
			End:   schedule.TimeOfDay(b.EndMin).Clock(),
			Title: b.Title,
			Note:  b.Note,
			Color: b.Color,
		}
	}

	return &BlockListOutput{Items: items, Total: len(items)}, nil
}
