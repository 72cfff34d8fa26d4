package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pranavb/lockin/internal/schedule"
)

// AgendaFunc returns the merged agenda for a weekday name.
type AgendaFunc func(day string) ([]schedule.Entry, error)

// Scanner watches the agenda and fires a reminder a fixed lead time
// before each fixed class or user block starts. Every reminder is sent
// at most once per day; the sent set resets at midnight.
type Scanner struct {
	agenda AgendaFunc
	sinks  []Notifier
	lead   int

	sent    map[string]bool
	sentDay string

	now func() time.Time
}

// NewScanner builds a scanner with the given lead minutes and sinks.
func NewScanner(agenda AgendaFunc, leadMinutes int, sinks ...Notifier) *Scanner {
	return &Scanner{
		agenda: agenda,
		sinks:  sinks,
		lead:   leadMinutes,
		sent:   make(map[string]bool),
		now:    time.Now,
	}
}

// Scan checks whether anything starts exactly lead minutes from now
// and notifies for it. Meant to run once per minute.
func (s *Scanner) Scan() {
	now := s.now()
	day := now.Weekday().String()
	if day != s.sentDay {
		s.Reset()
		s.sentDay = day
	}

	target := schedule.TimeOfDay(now.Hour()*60 + now.Minute() + s.lead)
	if !target.Valid() {
		// Lead crosses midnight; tomorrow's scan will catch it.
		return
	}

	entries, err := s.agenda(day)
	if err != nil {
		log.Printf("notify: agenda load failed: %v", err)
		return
	}

	for _, e := range entries {
		if e.Kind == schedule.KindGapBlock || e.Start != target {
			continue
		}
		key := fmt.Sprintf("%s-%s-%s", day, e.Start.Clock(), e.Title)
		if s.sent[key] {
			continue
		}
		s.sent[key] = true
		s.deliver(e)
	}
}

// Reset clears the sent set. Runs at midnight so tomorrow's instances
// of recurring entries notify again.
func (s *Scanner) Reset() {
	s.sent = make(map[string]bool)
}

func (s *Scanner) deliver(e schedule.Entry) {
	title := fmt.Sprintf("%s in %d min", e.Title, s.lead)
	body := fmt.Sprintf("%s-%s", e.Start.Clock(), e.End.Clock())
	if e.Location != "" {
		body += " @ " + e.Location
	}
	for _, sink := range s.sinks {
		if err := sink.Notify(title, body); err != nil {
			// A broken sink must not stop the others.
			log.Printf("notify: %v", err)
		}
	}
}

// Watch runs the scanner on a minute cron until ctx is cancelled.
func (s *Scanner) Watch(ctx context.Context) {
	c := cron.New()
	if _, err := c.AddFunc("* * * * *", s.Scan); err != nil {
		log.Printf("notify: register scan: %v", err)
		return
	}
	if _, err := c.AddFunc("0 0 * * *", s.Reset); err != nil {
		log.Printf("notify: register reset: %v", err)
		return
	}
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
}
