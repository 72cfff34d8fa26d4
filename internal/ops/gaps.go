package ops

import (
	"database/sql"

	"github.com/pranavb/lockin/internal/config"
	"github.com/pranavb/lockin/internal/schedule"
	"github.com/pranavb/lockin/internal/timetable"
)

// GapsInput contains parameters for the Gaps operation.
type GapsInput struct {
	Day string
}

// GapsOutput contains the result of the Gaps operation.
type GapsOutput struct {
	Day          string      `json:"day"`
	Gaps         []EntryView `json:"gaps"`
	TotalMinutes int         `json:"total_minutes"`
}

// Gaps computes just the derived free-time blocks for one day, without
// the fixed and user entries around them.
func Gaps(database *sql.DB, cfg *config.Config, input GapsInput) (*GapsOutput, error) {
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

	entries := append(week.Entries(day), blocks...)
	busy := make([]schedule.Interval, 0, len(entries))
	for _, e := range entries {
		busy = append(busy, e.Interval)
	}
	gaps := schedule.ComputeGaps(busy, policy)

	total := 0
	for _, g := range gaps {
		total += g.Duration()
	}

	return &GapsOutput{
		Day:          day,
		Gaps:         viewsOf(gaps),
		TotalMinutes: total,
	}, nil
}
