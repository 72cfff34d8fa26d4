package ops

import (
	"testing"

	"github.com/pranavb/lockin/internal/errors"
)

func TestGrid_FullWeekShape(t *testing.T) {
	database, cfg := testEnv(t)

	out, err := Grid(database, cfg, GridInput{})
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	if out.SlotMinutes != 60 {
		t.Errorf("SlotMinutes = %d, want 60", out.SlotMinutes)
	}
	// 08:00 through 18:00 inclusive in hour rows.
	if len(out.Slots) != 11 {
		t.Errorf("got %d slots, want 11", len(out.Slots))
	}
	if out.Slots[0] != "08:00" || out.Slots[10] != "18:00" {
		t.Errorf("slot bounds = %s..%s", out.Slots[0], out.Slots[10])
	}
	if len(out.Columns) != 7 {
		t.Fatalf("got %d columns, want 7", len(out.Columns))
	}
	if out.Columns[0].Day != "Monday" || out.Columns[6].Day != "Sunday" {
		t.Errorf("column order = %s..%s", out.Columns[0].Day, out.Columns[6].Day)
	}
	for _, col := range out.Columns {
		if len(col.Cells) != len(out.Slots) {
			t.Errorf("%s has %d cells, want %d", col.Day, len(col.Cells), len(out.Slots))
		}
	}
}

func TestGrid_MondayCells(t *testing.T) {
	database, cfg := testEnv(t)

	out, err := Grid(database, cfg, GridInput{Days: []string{"mon"}})
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	cells := out.Columns[0].Cells

	// 09:00 row starts MATH F102.
	math := cells[1]
	if !math.Covered || math.Entry == nil || math.Entry.Title != "MATH F102" {
		t.Fatalf("cells[1] = %+v", math)
	}
	if math.Span != 1 {
		t.Errorf("MATH span = %d, want 1", math.Span)
	}

	// 11:00 row starts the two-hour CS F111 lab; the 12:00 row is
	// covered but carries no entry.
	lab := cells[3]
	if lab.Entry == nil || lab.Entry.Title != "CS F111" || lab.Span != 2 {
		t.Fatalf("cells[3] = %+v", lab)
	}
	cont := cells[4]
	if !cont.Covered || cont.Entry != nil {
		t.Errorf("cells[4] = %+v, want covered continuation", cont)
	}

	// 08:00 row is the morning gap.
	gap := cells[0]
	if gap.Entry == nil || gap.Entry.Title != "Focus Block" {
		t.Errorf("cells[0] = %+v", gap)
	}
}

func TestGrid_CustomSlotMinutes(t *testing.T) {
	database, cfg := testEnv(t)

	out, err := Grid(database, cfg, GridInput{SlotMinutes: 30, Days: []string{"Sunday"}})
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if out.SlotMinutes != 30 {
		t.Errorf("SlotMinutes = %d, want 30", out.SlotMinutes)
	}
	if len(out.Slots) != 21 {
		t.Errorf("got %d slots, want 21", len(out.Slots))
	}
}

func TestGrid_UnknownDay(t *testing.T) {
	database, cfg := testEnv(t)

	if _, err := Grid(database, cfg, GridInput{Days: []string{"mo"}}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("Grid(mo) = %v, want INVALID_REQUEST", err)
	}
}
