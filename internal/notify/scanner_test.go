package notify

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pranavb/lockin/internal/errors"
	"github.com/pranavb/lockin/internal/schedule"
)

type recordingSink struct {
	titles []string
	err    error
}

func (r *recordingSink) Notify(title, body string) error {
	r.titles = append(r.titles, title)
	return r.err
}

func entry(start, end schedule.TimeOfDay, title string, kind schedule.Kind) schedule.Entry {
	return schedule.Entry{
		Interval: schedule.Interval{Start: start, End: end},
		Title:    title,
		Kind:     kind,
	}
}

// at returns a fixed clock on a known Monday.
func at(hour, min int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC) // a Monday
	}
}

func staticAgenda(entries []schedule.Entry) AgendaFunc {
	return func(day string) ([]schedule.Entry, error) {
		if day != "Monday" {
			return nil, nil
		}
		return entries, nil
	}
}

func TestScan_FiresAtLeadTime(t *testing.T) {
	sink := &recordingSink{}
	s := NewScanner(staticAgenda([]schedule.Entry{
		entry(540, 590, "MATH F102", schedule.KindFixed),
	}), 5, sink)

	s.now = at(8, 50)
	s.Scan()
	if len(sink.titles) != 0 {
		t.Fatalf("fired early: %v", sink.titles)
	}

	s.now = at(8, 55) // 5 minutes before 09:00
	s.Scan()
	if len(sink.titles) != 1 {
		t.Fatalf("got %d notifications, want 1", len(sink.titles))
	}
	if sink.titles[0] != "MATH F102 in 5 min" {
		t.Errorf("title = %q", sink.titles[0])
	}
}

func TestScan_DeduplicatesWithinDay(t *testing.T) {
	sink := &recordingSink{}
	s := NewScanner(staticAgenda([]schedule.Entry{
		entry(540, 590, "MATH F102", schedule.KindFixed),
	}), 5, sink)

	s.now = at(8, 55)
	s.Scan()
	s.Scan()
	s.Scan()
	if len(sink.titles) != 1 {
		t.Errorf("got %d notifications, want 1", len(sink.titles))
	}
}

func TestScan_ResetAllowsNextDay(t *testing.T) {
	sink := &recordingSink{}
	s := NewScanner(staticAgenda([]schedule.Entry{
		entry(540, 590, "MATH F102", schedule.KindFixed),
	}), 5, sink)

	s.now = at(8, 55)
	s.Scan()
	s.Reset()
	s.Scan()
	if len(sink.titles) != 2 {
		t.Errorf("got %d notifications after reset, want 2", len(sink.titles))
	}
}

func TestScan_SkipsGapBlocks(t *testing.T) {
	sink := &recordingSink{}
	s := NewScanner(staticAgenda([]schedule.Entry{
		entry(540, 720, "Deep Work", schedule.KindGapBlock),
		entry(540, 600, "Gym", schedule.KindUserBlock),
	}), 5, sink)

	s.now = at(8, 55)
	s.Scan()
	if len(sink.titles) != 1 || sink.titles[0] != "Gym in 5 min" {
		t.Errorf("titles = %v, want only the user block", sink.titles)
	}
}

func TestScan_BrokenSinkDoesNotStopOthers(t *testing.T) {
	broken := &recordingSink{err: fmt.Errorf("no daemon")}
	working := &recordingSink{}
	s := NewScanner(staticAgenda([]schedule.Entry{
		entry(540, 590, "MATH F102", schedule.KindFixed),
	}), 5, broken, working)

	s.now = at(8, 55)
	s.Scan()
	if len(working.titles) != 1 {
		t.Errorf("working sink got %d notifications, want 1", len(working.titles))
	}
}

func TestScan_AgendaErrorIsQuiet(t *testing.T) {
	sink := &recordingSink{}
	s := NewScanner(func(string) ([]schedule.Entry, error) {
		return nil, errors.NewInternal(nil)
	}, 5, sink)

	s.now = at(8, 55)
	s.Scan() // must not panic or notify
	if len(sink.titles) != 0 {
		t.Errorf("notified despite agenda error: %v", sink.titles)
	}
}

func TestWatch_RegistersJobsAndStopsOnCancel(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	s := NewScanner(staticAgenda(nil), 5, &recordingSink{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Watch(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}

	if strings.Contains(logs.String(), "register") {
		t.Errorf("cron registration failed: %s", logs.String())
	}
}

func TestBanner_Format(t *testing.T) {
	var buf bytes.Buffer
	b := Banner{W: &buf}
	if err := b.Notify("MATH F102 in 5 min", "09:00-09:50 @ F104"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "MATH F102 in 5 min") || !strings.Contains(out, "@ F104") {
		t.Errorf("banner output = %q", out)
	}
}
