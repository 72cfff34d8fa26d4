package timetable

import "testing"

func TestCoerceJSON_HappyPath(t *testing.T) {
	payload := `{
		"Monday": [
			{"time": "09:00", "end": "09:50", "title": "MATH F102", "type": "L3", "location": "F104"}
		],
		"Tuesday": []
	}`

	week, err := CoerceJSON([]byte(payload))
	if err != nil {
		t.Fatalf("CoerceJSON failed: %v", err)
	}

	if len(week["Monday"]) != 1 {
		t.Fatalf("Monday has %d records, want 1", len(week["Monday"]))
	}
	r := week["Monday"][0]
	if r.Time != "09:00" || r.End != "09:50" || r.Title != "MATH F102" {
		t.Errorf("record = %+v", r)
	}
	// All seven days appear even when the payload omits them.
	for _, day := range Weekdays {
		if _, ok := week[day]; !ok {
			t.Errorf("coerced week missing %s", day)
		}
	}
}

func TestCoerceJSON_FillsMissingFields(t *testing.T) {
	payload := `{"Monday": [{"type": "L1"}]}`

	week, err := CoerceJSON([]byte(payload))
	if err != nil {
		t.Fatalf("CoerceJSON failed: %v", err)
	}

	r := week["Monday"][0]
	if r.Time != "09:00" {
		t.Errorf("Time = %q, want default 09:00", r.Time)
	}
	if r.End != "10:00" {
		t.Errorf("End = %q, want default 10:00", r.End)
	}
	if r.Title != "Unknown Class" {
		t.Errorf("Title = %q, want default Unknown Class", r.Title)
	}
	if r.Type != "L1" {
		t.Errorf("Type = %q, want preserved L1", r.Type)
	}
	if r.Location != "" {
		t.Errorf("Location = %q, want empty", r.Location)
	}
}

func TestCoerceJSON_DropsUnknownDays(t *testing.T) {
	payload := `{"Monday": [], "Funday": [{"title": "nope"}]}`

	week, err := CoerceJSON([]byte(payload))
	if err != nil {
		t.Fatalf("CoerceJSON failed: %v", err)
	}

	if _, ok := week["Funday"]; ok {
		t.Error("unknown weekday key survived coercion")
	}
	if len(week) != len(Weekdays) {
		t.Errorf("week has %d keys, want %d", len(week), len(Weekdays))
	}
}

func TestCoerceJSON_RejectsNonArrayDay(t *testing.T) {
	payload := `{"Monday": {"time": "09:00"}, "Tuesday": "busy", "Wednesday": 7}`

	week, err := CoerceJSON([]byte(payload))
	if err != nil {
		t.Fatalf("CoerceJSON failed: %v", err)
	}

	for _, day := range []string{"Monday", "Tuesday", "Wednesday"} {
		if len(week[day]) != 0 {
			t.Errorf("%s = %+v, want empty (non-array rejected)", day, week[day])
		}
	}
}

func TestCoerceJSON_NonObjectPayload(t *testing.T) {
	for _, payload := range []string{`[]`, `"schedule"`, `not json`} {
		if _, err := CoerceJSON([]byte(payload)); err == nil {
			t.Errorf("CoerceJSON(%q) succeeded, want error", payload)
		}
	}
}
