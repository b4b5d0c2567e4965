package alert

import (
	"time"

	"github.com/crimson-sun/logwarden/internal/model"
)

// Suppressor collapses repeated critical events from the same source
// address within a time window, so a burst becomes a single alert with a
// count instead of an alert per record.
type Suppressor struct {
	window time.Duration
}

// NewSuppressor creates a Suppressor with the given window. A zero window
// disables collapsing.
func NewSuppressor(window time.Duration) *Suppressor {
	return &Suppressor{window: window}
}

// Suppressed is one collapsed group: the first event of the group and how
// many events it stands for.
type Suppressed struct {
	Event model.ClassifiedEvent
	Count int
}

// Collapse groups events by source address within the window. Events are
// expected in timestamp order; groups are returned in first-occurrence
// order.
func (s *Suppressor) Collapse(events []model.ClassifiedEvent) []Suppressed {
	if len(events) == 0 {
		return nil
	}
	if s == nil || s.window <= 0 {
		out := make([]Suppressed, len(events))
		for i, e := range events {
			out[i] = Suppressed{Event: e, Count: 1}
		}
		return out
	}

	type group struct {
		idx     int
		firstTS time.Time
	}
	var out []Suppressed
	open := make(map[string]*group)

	for _, e := range events {
		key := e.SourceAddr
		g, exists := open[key]
		if exists && e.Timestamp.Sub(g.firstTS) <= s.window {
			out[g.idx].Count++
			continue
		}
		// New group: either a new address or the window expired.
		open[key] = &group{idx: len(out), firstTS: e.Timestamp}
		out = append(out, Suppressed{Event: e, Count: 1})
	}
	return out
}
