package digitize

import (
	"testing"

	"github.com/pranavb/lockin/internal/errors"
)

func TestNewClient(t *testing.T) {
	if _, err := NewClient(nil, ""); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("NewClient(no keys) = %v, want INVALID_REQUEST", err)
	}

	c, err := NewClient([]string{"key1"}, "")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.model != "gemini-1.5-flash" {
		t.Errorf("default model = %q", c.model)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"Monday": []}`, `{"Monday": []}`},
		{"json fence", "```json\n{\"Monday\": []}\n```", `{"Monday": []}`},
		{"bare fence", "```\n{\"Monday\": []}\n```", `{"Monday": []}`},
		{"surrounding whitespace", "  \n{\"Monday\": []}\n  ", `{"Monday": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePayload(t *testing.T) {
	text := "```json\n" + `{
		"Monday": [{"time": "09:00", "end": "09:50", "title": "MATH F102", "type": "L3", "location": "F104"}],
		"Funday": [{"time": "10:00", "end": "11:00", "title": "Nope"}]
	}` + "\n```"

	week, err := parsePayload(text)
	if err != nil {
		t.Fatalf("parsePayload failed: %v", err)
	}
	if len(week["Monday"]) != 1 || week["Monday"][0].Title != "MATH F102" {
		t.Errorf("Monday = %+v", week["Monday"])
	}
	if _, ok := week["Funday"]; ok {
		t.Error("unknown day survived coercion")
	}
	if len(week) != 7 {
		t.Errorf("got %d days, want 7", len(week))
	}
}

func TestParsePayload_FillsMissingFields(t *testing.T) {
	week, err := parsePayload(`{"Tuesday": [{"type": "L1"}]}`)
	if err != nil {
		t.Fatalf("parsePayload failed: %v", err)
	}
	r := week["Tuesday"][0]
	if r.Time != "09:00" || r.End != "10:00" || r.Title != "Unknown Class" {
		t.Errorf("record = %+v, want defaults filled", r)
	}
}

func TestParsePayload_RejectsNonObject(t *testing.T) {
	if _, err := parsePayload("not json at all"); !errors.Is(err, errors.ErrDigitizeFailed) {
		t.Errorf("parsePayload(garbage) = %v, want DIGITIZE_FAILED", err)
	}
}
