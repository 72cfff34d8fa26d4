package schedule

// SlotHit describes the entry covering a grid slot.
type SlotHit struct {
	Entry Entry
	// IsStart is true iff the slot begins exactly at the entry's start.
	// Slots covered by a multi-slot entry but not its start slot should be
	// skipped by the renderer: the start slot spans them visually.
	IsStart bool
	// Span is the number of grid slots the entry occupies, rounded up.
	Span int
}

// EntryAt answers which agenda entry, if any, covers the slot beginning at
// slotStart, for a grid with slotMinutes-wide rows. If more than one entry
// covers the slot (overlapping user blocks), the first in agenda order
// wins; that is the documented resolution, not an error.
func EntryAt(agenda []Entry, slotStart TimeOfDay, slotMinutes int) (SlotHit, bool) {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	for _, e := range agenda {
		if e.Contains(slotStart) {
			return SlotHit{
				Entry:   e,
				IsStart: slotStart == e.Start,
				Span:    (e.Duration() + slotMinutes - 1) / slotMinutes,
			}, true
		}
	}
	return SlotHit{}, false
}

// Slots enumerates the slot start times of the grid covering [open, close),
// one per slotMinutes. The reference grid is 08:00-18:00 in 60-minute rows,
// eleven rows including the 18:00 boundary row.
func Slots(open, close TimeOfDay, slotMinutes int) []TimeOfDay {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	var slots []TimeOfDay
	for t := open; t <= close; t += TimeOfDay(slotMinutes) {
		slots = append(slots, t)
	}
	return slots
}
