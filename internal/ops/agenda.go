package ops

import (
	"database/sql"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timetable"
)

// AgendaInput contains parameters for the Agenda operation.
type AgendaInput struct {
	Day string // weekday name or 3-letter prefix
}

// AgendaOutput contains the result of the Agenda operation.
type AgendaOutput struct {
	Day     string      `json:"day"`
	Open    string      `json:"open"`
	Close   string      `json:"close"`
	Entries []EntryView `json:"entries"`
}

// Agenda builds the merged schedule for one day: fixed timetable
// entries, user blocks, and the gap blocks derived from what remains of
// the lock-in window, sorted by start time.
func Agenda(database *sql.DB, cfg *config.Config, input AgendaInput) (*AgendaOutput, error) {
	day, err := timetable.NormalizeDay(input.Day)
	if err != nil {
		return nil, err
	}

	policy, err := cfg.GapPolicy()
	if err != nil {
		return nil, err
	}

	week, err := loadWeek(database)
	if err != nil {
		return nil, err
	}
	blocks, err := blockEntries(database, day)
	if err != nil {
		return nil, err
	}

	merged := schedule.BuildAgenda(week.Entries(day), blocks, policy)

	return &AgendaOutput{
		Day:     day,
		Open:    policy.Open.Clock(),
		Close:   policy.Close.Clock(),
		Entries: viewsOf(merged),
	}, nil
}
