package schedule

import "sort"

// BuildAgenda merges fixed timetable entries, user blocks, and the gap
// blocks derived from their union into one day's agenda, sorted ascending
// by start time. The sort is stable: entries starting at the same minute
// keep their input order (fixed, then user blocks, then gaps).
//
// Overlap among caller-supplied entries is not validated here; the slot
// query resolves any collision first-match-wins.
func BuildAgenda(fixed, blocks []Entry, p GapPolicy) []Entry {
	busy := make([]Interval, 0, len(fixed)+len(blocks))
	for _, e := range fixed {
		busy = append(busy, e.Interval)
	}
	for _, e := range blocks {
		busy = append(busy, e.Interval)
	}

	gaps := ComputeGaps(busy, p)

	agenda := make([]Entry, 0, len(busy)+len(gaps))
	agenda = append(agenda, fixed...)
	agenda = append(agenda, blocks...)
	agenda = append(agenda, gaps...)

	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].Start < agenda[j].Start
	})

	return agenda
}
