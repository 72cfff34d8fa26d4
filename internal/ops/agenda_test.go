package ops

import (
	"testing"

	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/schedule"
)

func TestAgenda_DefaultMonday(t *testing.T) {
	database, cfg := testEnv(t)

	out, err := Agenda(database, cfg, AgendaInput{Day: "mon"})
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}

	if out.Day != "Monday" {
		t.Errorf("Day = %q, want Monday", out.Day)
	}
	if out.Open != "08:00" || out.Close != "18:00" {
		t.Errorf("window = %s-%s", out.Open, out.Close)
	}

	// Six fixed classes plus the two qualifying gaps.
	if len(out.Entries) != 8 {
		t.Fatalf("got %d entries, want 8: %+v", len(out.Entries), out.Entries)
	}

	// Sorted by start; the morning gap comes first.
	first := out.Entries[0]
	if first.Kind != string(schedule.KindGapBlock) || first.Start != "08:00" || first.End != "09:00" {
		t.Errorf("entries[0] = %+v, want 08:00-09:00 gap", first)
	}
	if first.Title != "Focus Block" {
		t.Errorf("morning gap title = %q, want Focus Block", first.Title)
	}

	var deepWork *EntryView
	for i := range out.Entries {
		if out.Entries[i].Title == "Deep Work" {
			deepWork = &out.Entries[i]
		}
	}
	if deepWork == nil {
		t.Fatal("no Deep Work entry in Monday agenda")
	}
	if deepWork.Start != "12:50" || deepWork.End != "16:00" || deepWork.Minutes != 190 {
		t.Errorf("deep work = %+v", deepWork)
	}
	if deepWork.Label != "DW" || deepWork.Location != "Startup" {
		t.Errorf("deep work metadata = %q/%q", deepWork.Label, deepWork.Location)
	}

	for i := 1; i < len(out.Entries); i++ {
		if out.Entries[i].Start < out.Entries[i-1].Start {
			t.Errorf("entries not sorted at %d: %s < %s", i, out.Entries[i].Start, out.Entries[i-1].Start)
		}
	}
}

func TestAgenda_IncludesUserBlocks(t *testing.T) {
	database, cfg := testEnv(t)

	mustBlockAdd(t, database, BlockAddInput{
		Day: "Sunday", Start: "10:00", End: "11:30", Title: "Gym",
	})

	out, err := Agenda(database, cfg, AgendaInput{Day: "sunday"})
	if err != nil {
		t.Fatalf("Agenda failed: %v", err)
	}

	// Empty fixed day: gap before the block, the block, gap after.
	if len(out.Entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(out.Entries), out.Entries)
	}
	if out.Entries[0].Kind != string(schedule.KindGapBlock) || out.Entries[0].End != "10:00" {
		t.Errorf("entries[0] = %+v", out.Entries[0])
	}
	if out.Entries[1].Title != "Gym" || out.Entries[1].Kind != string(schedule.KindUserBlock) {
		t.Errorf("entries[1] = %+v", out.Entries[1])
	}
	if out.Entries[2].Start != "11:30" || out.Entries[2].End != "18:00" {
		t.Errorf("entries[2] = %+v", out.Entries[2])
	}
}

func TestAgenda_UnknownDay(t *testing.T) {
	database, cfg := testEnv(t)

	if _, err := Agenda(database, cfg, AgendaInput{Day: "funday"}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("Agenda(funday) = %v, want INVALID_REQUEST", err)
	}
}
