package logwarden

import (
	"context"
	"fmt"

	"github.com/crimson-sun/logwarden/internal/alert"
	"github.com/crimson-sun/logwarden/internal/engine"
	"github.com/crimson-sun/logwarden/internal/engine/classifier"
	"github.com/crimson-sun/logwarden/internal/engine/feature"
	"github.com/crimson-sun/logwarden/internal/engine/scorer"
	"github.com/crimson-sun/logwarden/internal/model"
	"github.com/crimson-sun/logwarden/internal/source/logfile"
)

// Warden is a batch log anomaly analyzer. Create one with New and reuse it;
// every Analyze call fits a fresh model over its own batch.
type Warden struct {
	engine *engine.Engine
	opts   options
}

// New creates a Warden from the given options.
func New(opts ...Option) (*Warden, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.contamination <= 0 || o.contamination >= 1 {
		return nil, fmt.Errorf("logwarden: contamination must be in (0, 1), got %g", o.contamination)
	}

	rules := o.rules
	if rules == nil {
		rules = classifier.DefaultRules(o.criticalLevel)
	}

	eng := engine.New(
		feature.New(o.keywords),
		scorer.New(scorer.Config{
			Contamination: o.contamination,
			Trees:         o.trees,
			SampleSize:    o.sampleSize,
			Seed:          o.seed,
		}),
		classifier.New(rules),
	)
	return &Warden{engine: eng, opts: o}, nil
}

// Analyze scores and classifies a batch of records, returning one event per
// record plus the alerts generated for Critical events.
func (w *Warden) Analyze(records []Record) (*Report, error) {
	recs := make([]model.LogRecord, len(records))
	for i, r := range records {
		rec, err := recordToModel(r)
		if err != nil {
			return nil, fmt.Errorf("logwarden: record %d: %w", i, err)
		}
		recs[i] = rec
	}
	return w.analyze(recs, 0)
}

// AnalyzeLines parses pipe-delimited log lines and analyzes the valid ones.
// Malformed lines are skipped and counted in the report, matching the file
// source's behavior.
func (w *Warden) AnalyzeLines(lines []string) (*Report, error) {
	var (
		recs      []model.LogRecord
		malformed int
	)
	for _, line := range lines {
		if line == "" {
			continue
		}
		rec, err := logfile.ParseLine(line)
		if err != nil {
			malformed++
			continue
		}
		recs = append(recs, rec)
	}
	return w.analyze(recs, malformed)
}

func (w *Warden) analyze(recs []model.LogRecord, malformed int) (*Report, error) {
	events, err := w.engine.Analyze(recs)
	if err != nil {
		if malformed > 0 {
			return nil, fmt.Errorf("logwarden (%d unparsable lines skipped): %w", malformed, err)
		}
		return nil, fmt.Errorf("logwarden: %w", err)
	}

	sink := alert.NewMemory()
	emitter := alert.New(alert.NewSuppressor(w.opts.suppressWindow), sink)
	if _, err := emitter.EmitCritical(context.Background(), events); err != nil {
		return nil, fmt.Errorf("logwarden: %w", err)
	}

	out := make([]Event, len(events))
	for i, ev := range events {
		out[i] = eventFromModel(ev)
	}
	return &Report{Events: out, Alerts: sink.Alerts(), Malformed: malformed}, nil
}
