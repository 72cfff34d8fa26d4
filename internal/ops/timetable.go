package ops

import (
	"database/sql"

	"github.com/pranavb/lockin/internal/db"
	"github.com/pranavb/lockin/internal/timetable"
)

// Timetable sources reported by TimetableGet.
const (
	SourceStored  = "stored"
	SourceDefault = "default"
)

// TimetableGetOutput contains the result of the TimetableGet operation.
type TimetableGetOutput struct {
	Source string         `json:"source"`
	Week   timetable.Week `json:"week"`
}

// TimetableGet returns the active fixed timetable and where it came
// from: the stored one if any has been adopted, otherwise the built-in
// default.
func TimetableGet(database *sql.DB) (*TimetableGetOutput, error) {
	week, found, err := db.LoadTimetable(database)
	if err != nil {
		return nil, err
	}
	source := SourceStored
	if !found {
		week = timetable.Default()
		source = SourceDefault
	}
	return &TimetableGetOutput{Source: source, Week: week}, nil
}

// TimetableSetInput contains parameters for the TimetableSet operation.
type TimetableSetInput struct {
	// JSON is a per-weekday schedule payload; it is coerced the same way
	// digitizer output is.
	JSON []byte
}

// TimetableSetOutput contains the result of the TimetableSet operation.
type TimetableSetOutput struct {
	Days    int `json:"days"`
	Records int `json:"records"`
}

// TimetableSet replaces the stored fixed timetable wholesale from a
// JSON payload.
func TimetableSet(database *sql.DB, input TimetableSetInput) (*TimetableSetOutput, error) {
	week, err := timetable.CoerceJSON(input.JSON)
	if err != nil {
		return nil, err
	}
	if err := db.ReplaceTimetable(database, week); err != nil {
		return nil, err
	}
	return &TimetableSetOutput{Days: countDays(week), Records: countRecords(week)}, nil
}

// TimetableResetOutput contains the result of the TimetableReset operation.
type TimetableResetOutput struct {
	Source string `json:"source"`
}

// TimetableReset drops the stored timetable so reads fall back to the
// built-in default.
func TimetableReset(database *sql.DB) (*TimetableResetOutput, error) {
	if err := db.ClearTimetable(database); err != nil {
		return nil, err
	}
	return &TimetableResetOutput{Source: SourceDefault}, nil
}

func countDays(week timetable.Week) int {
	days := 0
	for _, records := range week {
		if len(records) > 0 {
			days++
		}
	}
	return days
}

func countRecords(week timetable.Week) int {
	total := 0
	for _, records := range week {
		total += len(records)
	}
	return total
}
