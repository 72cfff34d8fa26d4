package ops

import (
	"database/sql"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timetable"
)

// GridInput contains parameters for the Grid operation.
type GridInput struct {
	SlotMinutes int      // 0 means the configured default
	Days        []string // empty means the full week
}

// GridCell is one rendered cell of the week grid. A covered cell that
// is not the entry's start slot has Covered set but no Entry: the start
// cell spans it visually.
type GridCell struct {
	Slot    string     `json:"slot"`
	Covered bool       `json:"covered"`
	Span    int        `json:"span,omitempty"`
	Entry   *EntryView `json:"entry,omitempty"`
}

// GridColumn is one weekday's column of cells.
type GridColumn struct {
	Day   string     `json:"day"`
	Cells []GridCell `json:"cells"`
}

// GridOutput contains the result of the Grid operation.
type GridOutput struct {
	SlotMinutes int          `json:"slot_minutes"`
	Slots       []string     `json:"slots"`
	Columns     []GridColumn `json:"columns"`
}

// Grid renders the weekly agenda as a slot grid. Each column is built
// from that day's merged agenda; when entries overlap a slot, the first
// in agenda order wins.
func Grid(database *sql.DB, cfg *config.Config, input GridInput) (*GridOutput, error) {
	policy, err := cfg.GapPolicy()
	if err != nil {
		return nil, err
	}

	slotMinutes := input.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = cfg.SlotMinutes
	}

	days := input.Days
	if len(days) == 0 {
		days = timetable.Weekdays
	}
	normalized := make([]string, len(days))
	for i, raw := range days {
		day, err := timetable.NormalizeDay(raw)
		if err != nil {
			return nil, err
		}
		normalized[i] = day
	}

	week, err := loadWeek(database)
	if err != nil {
		return nil, err
	}

	slots := schedule.Slots(policy.Open, policy.Close, slotMinutes)
	labels := make([]string, len(slots))
	for i, t := range slots {
		labels[i] = t.Clock()
	}

	columns := make([]GridColumn, len(normalized))
	for i, day := range normalized {
		blocks, err := blockEntries(database, day)
		if err != nil {
			return nil, err
		}
		agenda := schedule.BuildAgenda(week.Entries(day), blocks, policy)

		cells := make([]GridCell, len(slots))
		for j, slot := range slots {
			cell := GridCell{Slot: slot.Clock()}
			if hit, ok := schedule.EntryAt(agenda, slot, slotMinutes); ok {
				cell.Covered = true
				if hit.IsStart {
					cell.Span = hit.Span
					view := viewOf(hit.Entry)
					cell.Entry = &view
				}
			}
			cells[j] = cell
		}
		columns[i] = GridColumn{Day: day, Cells: cells}
	}

	return &GridOutput{
		SlotMinutes: slotMinutes,
		Slots:       labels,
		Columns:     columns,
	}, nil
}
