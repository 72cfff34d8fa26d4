package schedule

import (
	"fmt"
	"sort"

	"github.com/pranavb/lockin/internal/errors"
)

// Gap labeling defaults. The thresholds are configurable via GapPolicy;
// these are the values the reference timetable was designed around.
const (
	DefaultWindowOpen  = TimeOfDay(8 * 60)  // 08:00
	DefaultWindowClose = TimeOfDay(18 * 60) // 18:00
	DefaultMinGap      = 30
	DefaultDeepWorkMin = 120
	DefaultSlotMinutes = 60

	gapLabel    = "DW"
	gapLocation = "Startup"

	titleDeepWork   = "Deep Work"
	titleFocusBlock = "Focus Block"
)

// GapPolicy bounds and tunes gap computation. Open/Close define the
// lock-in window within which free time is surfaced; MinGap is the
// smallest gap worth emitting; DeepWorkMin is the duration at which a
// gap is promoted from "Focus Block" to "Deep Work".
type GapPolicy struct {
	Open        TimeOfDay
	Close       TimeOfDay
	MinGap      int
	DeepWorkMin int
}

// DefaultGapPolicy returns the 08:00-18:00 / 30 / 120 reference policy.
func DefaultGapPolicy() GapPolicy {
	return GapPolicy{
		Open:        DefaultWindowOpen,
		Close:       DefaultWindowClose,
		MinGap:      DefaultMinGap,
		DeepWorkMin: DefaultDeepWorkMin,
	}
}

// Validate checks the policy invariants: open < close, positive MinGap.
func (p GapPolicy) Validate() error {
	if !p.Open.Valid() || !p.Close.Valid() || p.Open >= p.Close {
		return errors.NewInvalidInterval(p.Open.Clock(), p.Close.Clock())
	}
	if p.MinGap <= 0 {
		return errors.NewInvalidRequest("min gap must be a positive number of minutes")
	}
	return nil
}

// ComputeGaps derives the maximal free sub-intervals of the lock-in window
// not covered by busy, keeping only gaps of at least p.MinGap minutes.
// busy need not be sorted or non-overlapping; the input slice is not
// mutated. Gaps of DeepWorkMin minutes or more are titled "Deep Work",
// shorter qualifying gaps "Focus Block".
func ComputeGaps(busy []Interval, p GapPolicy) []Entry {
	sorted := make([]Interval, len(busy))
	copy(sorted, busy)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var gaps []Entry
	cursor := p.Open

	for _, b := range sorted {
		if b.Start > cursor && b.Start <= p.Close {
			gapEnd := min(b.Start, p.Close)
			if gap, ok := qualifyGap(cursor, gapEnd, p); ok {
				gaps = append(gaps, gap)
			}
		}
		// The cursor advances for every busy interval, including ones that
		// start before it or outside the window: overlapping intervals may
		// still extend the covered span. max keeps it monotonic.
		cursor = max(cursor, b.End)
	}

	if cursor < p.Close {
		if gap, ok := qualifyGap(cursor, p.Close, p); ok {
			gaps = append(gaps, gap)
		}
	}

	return gaps
}

// qualifyGap builds a gap entry for [start, end) if it meets the minimum
// duration.
func qualifyGap(start, end TimeOfDay, p GapPolicy) (Entry, bool) {
	duration := int(end - start)
	if duration < p.MinGap {
		return Entry{}, false
	}

	title := titleFocusBlock
	if duration >= p.DeepWorkMin {
		title = titleDeepWork
	}

	return Entry{
		Interval: Interval{Start: start, End: end},
		Title:    title,
		Kind:     KindGapBlock,
		Label:    gapLabel,
		Location: gapLocation,
		ID:       fmt.Sprintf("gap-%s", start.Clock()),
	}, true
}
