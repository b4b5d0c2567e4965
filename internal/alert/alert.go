// Package alert turns Critical events into alerts and delivers them to
// sinks. Delivery is simulated: the sink boundary is where a real
// notification integration would plug in.
package alert

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/crimson-sun/logwarden/internal/model"
)

// Sink receives formatted alerts.
type Sink interface {
	Emit(ctx context.Context, a model.Alert) error
	Close() error
}

// Emitter filters a batch of classified events down to Critical ones,
// suppresses repeats, and fans the resulting alerts out to every sink.
type Emitter struct {
	suppressor *Suppressor
	sinks      []Sink
}

// New creates an Emitter. A nil suppressor disables repeat suppression.
func New(sup *Suppressor, sinks ...Sink) *Emitter {
	return &Emitter{suppressor: sup, sinks: sinks}
}

// EmitCritical builds one alert per Critical event (after suppression) and
// delivers each to all sinks. A failing sink does not block the others.
// Returns the alerts in event order.
func (e *Emitter) EmitCritical(ctx context.Context, events []model.ClassifiedEvent) ([]model.Alert, error) {
	var critical []model.ClassifiedEvent
	for _, ev := range events {
		if ev.Category == model.CategoryCritical {
			critical = append(critical, ev)
		}
	}
	groups := e.suppressor.Collapse(critical)
	if len(groups) == 0 {
		return nil, nil
	}

	alerts := make([]model.Alert, 0, len(groups))
	var errs []error
	for _, g := range groups {
		ev := g.Event
		a := model.Alert{
			ID:         uuid.NewString(),
			Timestamp:  ev.Timestamp,
			SourceAddr: ev.SourceAddr,
			Level:      ev.Level,
			Message:    ev.Message,
			Count:      g.Count,
		}
		alerts = append(alerts, a)
		for _, s := range e.sinks {
			if err := s.Emit(ctx, a); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return alerts, errors.Join(errs...)
}

// Close closes every sink, collecting errors.
func (e *Emitter) Close() error {
	var errs []error
	for _, s := range e.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Memory is a Sink that accumulates alerts in memory for inspection.
type Memory struct {
	mu     sync.Mutex
	alerts []model.Alert
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{}
}

// Emit appends the alert.
func (m *Memory) Emit(_ context.Context, a model.Alert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, a)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Alerts returns a copy of everything emitted so far.
func (m *Memory) Alerts() []model.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

// Strings returns the formatted alert lines in emission order.
func (m *Memory) Strings() []string {
	alerts := m.Alerts()
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.String()
	}
	return out
}

// Log is a Sink that writes alerts through slog.
type Log struct{}

// NewLog creates a logging sink.
func NewLog() *Log { return &Log{} }

// Emit logs the alert at warn level.
func (l *Log) Emit(_ context.Context, a model.Alert) error {
	slog.Warn("critical event alert",
		"alert_id", a.ID,
		"timestamp", a.Timestamp,
		"source_addr", a.SourceAddr,
		"level", a.Level.String(),
		"message", a.Message,
		"count", a.Count,
	)
	return nil
}

// Close is a no-op.
func (l *Log) Close() error { return nil }
