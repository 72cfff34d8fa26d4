package timetable

import (
	"encoding/json"

	"github.com/pranavb/lockin/internal/errors"
)

// Fallbacks applied to records missing fields after digitization.
const (
	fallbackTime  = "09:00"
	fallbackEnd   = "10:00"
	fallbackTitle = "Unknown Class"
)

// CoerceJSON decodes and coerces an untrusted per-weekday schedule
// payload, typically the digitizer's output. Shape rules:
//   - unknown weekday keys are dropped
//   - a non-array day value is rejected (the day comes back empty)
//   - missing record fields are filled with safe defaults
//   - all seven weekdays are present in the result
//
// No semantic validation of time ordering or overlap happens here; that
// is deliberate (the scheduling core tolerates both).
func CoerceJSON(data []byte) (Week, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewInvalidRequest("schedule payload is not a JSON object: " + err.Error())
	}
	return coerce(raw), nil
}

func coerce(raw map[string]json.RawMessage) Week {
	week := make(Week, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = coerceDay(raw[day])
	}
	return week
}

func coerceDay(raw json.RawMessage) []Record {
	if len(raw) == 0 {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		// Non-array day value: reject it, keep the day empty.
		return []Record{}
	}
	for i := range records {
		if records[i].Time == "" {
			records[i].Time = fallbackTime
		}
		if records[i].End == "" {
			records[i].End = fallbackEnd
		}
		if records[i].Title == "" {
			records[i].Title = fallbackTitle
		}
	}
	return records
}
