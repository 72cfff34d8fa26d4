package schedule

import "testing"

func TestEntryAt_SingleHourEntry(t *testing.T) {
	agenda := []Entry{{
		Interval: Interval{Start: 540, End: 590},
		Title:    "MATH F102",
		Kind:     KindFixed,
	}}

	hit, ok := EntryAt(agenda, 540, 60)
	if !ok {
		t.Fatal("EntryAt(09:00) found nothing")
	}
	if !hit.IsStart {
		t.Error("IsStart = false, want true")
	}
	if hit.Span != 1 {
		t.Errorf("Span = %d, want 1 (50 min rounds up to one slot)", hit.Span)
	}

	if _, ok := EntryAt(agenda, 600, 60); ok {
		t.Error("EntryAt(10:00) found an entry, want none")
	}
}

func TestEntryAt_MultiHourSpan(t *testing.T) {
	// A 11:00-12:50 practical covers the 11:00 and 12:00 slots.
	agenda := []Entry{{
		Interval: Interval{Start: 660, End: 770},
		Title:    "CS F111",
		Kind:     KindFixed,
	}}

	start, ok := EntryAt(agenda, 660, 60)
	if !ok || !start.IsStart {
		t.Fatalf("start slot: ok=%v IsStart=%v, want true/true", ok, start.IsStart)
	}
	if start.Span != 2 {
		t.Errorf("Span = %d, want 2 (110 min -> ceil to 2 slots)", start.Span)
	}

	mid, ok := EntryAt(agenda, 720, 60)
	if !ok {
		t.Fatal("mid slot: found nothing")
	}
	if mid.IsStart {
		t.Error("mid slot IsStart = true, want false")
	}
	if mid.Entry.Title != start.Entry.Title {
		t.Errorf("mid slot entry = %q, want same entry %q", mid.Entry.Title, start.Entry.Title)
	}
	if mid.Span != start.Span {
		t.Errorf("mid slot Span = %d, want unchanged %d", mid.Span, start.Span)
	}
}

func TestEntryAt_FirstMatchWins(t *testing.T) {
	// Overlapping user blocks resolve to the first in agenda order.
	agenda := []Entry{
		{Interval: Interval{Start: 600, End: 720}, Title: "First", Kind: KindUserBlock, ID: "01A"},
		{Interval: Interval{Start: 660, End: 780}, Title: "Second", Kind: KindUserBlock, ID: "01B"},
	}

	hit, ok := EntryAt(agenda, 660, 60)
	if !ok {
		t.Fatal("found nothing at 11:00")
	}
	if hit.Entry.Title != "First" {
		t.Errorf("entry = %q, want %q (first match wins)", hit.Entry.Title, "First")
	}
}

func TestEntryAt_DefaultSlotMinutes(t *testing.T) {
	agenda := []Entry{{Interval: Interval{Start: 480, End: 660}, Title: "Long", Kind: KindUserBlock}}

	hit, ok := EntryAt(agenda, 480, 0)
	if !ok {
		t.Fatal("found nothing")
	}
	if hit.Span != 3 {
		t.Errorf("Span = %d, want 3 (180 min at default 60-min slots)", hit.Span)
	}
}

func TestSlots_ReferenceGrid(t *testing.T) {
	slots := Slots(480, 1080, 60)

	if len(slots) != 11 {
		t.Fatalf("got %d slots, want 11 (08:00..18:00)", len(slots))
	}
	if slots[0] != 480 || slots[10] != 1080 {
		t.Errorf("bounds = %d, %d; want 480, 1080", slots[0], slots[10])
	}
}
