package timetable

import (
	"testing"

	"github.com/pranavb/lockin/internal/schedule"
)

func TestNormalizeDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Monday", "Monday"},
		{"monday", "Monday"},
		{"MON", "Monday"},
		{"sat", "Saturday"},
		{" sunday ", "Sunday"},
	}

	for _, tt := range tests {
		got, err := NormalizeDay(tt.in)
		if err != nil {
			t.Errorf("NormalizeDay(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "funday", "mo", "mondays"} {
		if _, err := NormalizeDay(bad); err == nil {
			t.Errorf("NormalizeDay(%q) succeeded, want error", bad)
		}
	}
}

func TestDefault_AllWeekdaysPresent(t *testing.T) {
	week := Default()

	for _, day := range Weekdays {
		if _, ok := week[day]; !ok {
			t.Errorf("default week missing %s", day)
		}
	}
	if len(week["Monday"]) != 6 {
		t.Errorf("Monday has %d records, want 6", len(week["Monday"]))
	}
	if len(week["Saturday"]) != 0 || len(week["Sunday"]) != 0 {
		t.Error("weekend days should start empty")
	}
}

func TestEntries_ConvertsValidRecords(t *testing.T) {
	week := Default()
	entries := week.Entries("Monday")

	if len(entries) != 6 {
		t.Fatalf("got %d entries, want 6", len(entries))
	}
	first := entries[0]
	if first.Start != 540 || first.End != 590 {
		t.Errorf("first entry = [%d, %d), want [540, 590)", first.Start, first.End)
	}
	if first.Kind != schedule.KindFixed {
		t.Errorf("kind = %q, want fixed", first.Kind)
	}
	if first.Title != "MATH F102" || first.Label != "L3" || first.Location != "F104" {
		t.Errorf("metadata = %q/%q/%q", first.Title, first.Label, first.Location)
	}
	if first.ID != "" {
		t.Errorf("fixed entry carries ID %q, want empty", first.ID)
	}
}

func TestEntries_SkipsBadRecordsLocally(t *testing.T) {
	week := Week{
		"Monday": {
			{Time: "09:00", End: "09:50", Title: "Good"},
			{Time: "25:00", End: "26:00", Title: "Bad time"},
			{Time: "10:00", End: "09:00", Title: "Inverted"},
			{Time: "11:00", End: "11:50", Title: "Also good"},
		},
	}

	entries := week.Entries("Monday")

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (bad records skipped, not fatal)", len(entries))
	}
	if entries[0].Title != "Good" || entries[1].Title != "Also good" {
		t.Errorf("surviving titles = %q, %q", entries[0].Title, entries[1].Title)
	}
}

func TestEntries_UnknownDayEmpty(t *testing.T) {
	week := Default()
	if got := week.Entries("Funday"); len(got) != 0 {
		t.Errorf("Entries(Funday) = %d entries, want 0", len(got))
	}
}

func TestClone_Independent(t *testing.T) {
	week := Default()
	clone := week.Clone()

	clone["Monday"][0].Title = "mutated"
	if week["Monday"][0].Title == "mutated" {
		t.Error("mutating clone changed original")
	}
}
