package timetable

import (
	"strings"

	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/schedule"
)

// Weekdays lists the weekday keys in display order, Monday first.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Record is one fixed timetable entry in its boundary form: times as
// "HH:MM" strings, exactly as supplied by the external schedule source.
type Record struct {
	Time     string `json:"time"`
	End      string `json:"end"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

// Week maps weekday name to that day's ordered records.
type Week map[string][]Record

// NormalizeDay resolves a user-supplied day name ("mon", "Monday",
// "MONDAY") to its canonical weekday key.
func NormalizeDay(s string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, day := range Weekdays {
		lower := strings.ToLower(day)
		if needle == lower || (len(needle) == 3 && needle == lower[:3]) {
			return day, nil
		}
	}
	return "", errors.NewInvalidRequest("unknown day: " + s)
}

// Entries converts a day's records into fixed schedule entries. Records
// whose times fail strict parsing, or whose interval is inverted, are
// skipped: one bad record never aborts the rest of the day.
func (w Week) Entries(day string) []schedule.Entry {
	records := w[day]
	entries := make([]schedule.Entry, 0, len(records))
	for _, r := range records {
		start, err := schedule.ParseClock(r.Time)
		if err != nil {
			continue
		}
		end, err := schedule.ParseClock(r.End)
		if err != nil {
			continue
		}
		iv, err := schedule.NewInterval(start, end)
		if err != nil {
			continue
		}
		entries = append(entries, schedule.Entry{
			Interval: iv,
			Title:    r.Title,
			Kind:     schedule.KindFixed,
			Label:    r.Type,
			Location: r.Location,
		})
	}
	return entries
}

// Clone returns a deep copy of the week. Callers hand snapshots to the
// scheduling core; the stored week is never mutated in place.
func (w Week) Clone() Week {
	out := make(Week, len(w))
	for day, records := range w {
		copied := make([]Record, len(records))
		copy(copied, records)
		out[day] = copied
	}
	return out
}
