package schedule

import "github.com/pranavb/lockin/internal/errors"

// Kind classifies where a schedule entry came from.
type Kind string

const (
	// KindFixed marks an entry from the fixed weekly timetable. Fixed
	// entries are read-only: they are never merged, split, or edited here.
	KindFixed Kind = "fixed"

	// KindUserBlock marks an entry the user created directly. It carries an
	// ID that can be targeted for edit or delete.
	KindUserBlock Kind = "block"

	// KindGapBlock marks a derived free-time entry computed by ComputeGaps.
	// Gap blocks are never persisted and are recomputed on every call.
	KindGapBlock Kind = "gap"
)

// Interval is a half-open time range [Start, End) within one day.
type Interval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// NewInterval builds an Interval, rejecting zero-length or inverted ranges.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !start.Valid() || !end.Valid() || start >= end {
		return Interval{}, errors.NewInvalidInterval(start.Clock(), end.Clock())
	}
	return Interval{Start: start, End: end}, nil
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return int(iv.End - iv.Start)
}

// Contains reports whether t falls within [Start, End).
func (iv Interval) Contains(t TimeOfDay) bool {
	return t >= iv.Start && t < iv.End
}

// Entry is an Interval tagged with display metadata.
type Entry struct {
	Interval
	// Title is the display name ("MATH F102", "Deep Work", ...).
	Title string
	// Kind records the entry's source.
	Kind Kind
	// Label is the short tag shown next to the title (class type like "L3",
	// or "DW" for gap-derived entries).
	Label string
	// Location is the room or descriptive location string.
	Location string
	// ID is present for user blocks (and synthesized for gap blocks);
	// empty for fixed entries.
	ID string
	// Color is a display hint for user blocks.
	Color string
	// Note is an optional markdown description for user blocks.
	Note string
}

// Overlaps reports whether two intervals share any minute.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}
