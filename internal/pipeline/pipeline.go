// Package pipeline wires a source, the analysis engine, the event table
// output, and the alert emitter into a single batch run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/crimson-sun/logwarden/internal/alert"
	"github.com/crimson-sun/logwarden/internal/engine"
	"github.com/crimson-sun/logwarden/internal/model"
	"github.com/crimson-sun/logwarden/internal/output"
	"github.com/crimson-sun/logwarden/internal/report"
	"github.com/crimson-sun/logwarden/internal/source"
)

// Pipeline connects a source, engine, output, and alert emitter.
type Pipeline struct {
	source  source.Source
	engine  *engine.Engine
	output  output.Output
	alerter *alert.Emitter
}

// Result is everything one batch run produced.
type Result struct {
	Events    []model.ClassifiedEvent
	Alerts    []model.Alert
	Summary   report.Summary
	Malformed int // input lines skipped as unparsable
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng *engine.Engine, out output.Output, alerter *alert.Emitter) *Pipeline {
	return &Pipeline{
		source:  src,
		engine:  eng,
		output:  out,
		alerter: alerter,
	}
}

// Run executes one batch: fetch all records, analyze them, write the
// classified-event table, emit alerts for Critical events, and build the
// summary. Each stage consumes the complete output of the prior stage.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config) (*Result, error) {
	records, stats, err := p.source.Fetch(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline fetch: %w", err)
	}
	return p.run(ctx, records, stats)
}

func (p *Pipeline) run(ctx context.Context, records []model.LogRecord, stats source.Stats) (*Result, error) {
	events, err := p.engine.Analyze(records)
	if err != nil {
		if stats.Malformed > 0 {
			return nil, fmt.Errorf("pipeline analyze (%d unparsable lines skipped): %w", stats.Malformed, err)
		}
		return nil, fmt.Errorf("pipeline analyze: %w", err)
	}

	for _, ev := range events {
		if err := p.output.Write(ctx, ev); err != nil {
			return nil, fmt.Errorf("pipeline output: %w", err)
		}
	}

	alerts, err := p.alerter.EmitCritical(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("pipeline alert: %w", err)
	}

	return &Result{
		Events:    events,
		Alerts:    alerts,
		Summary:   report.Build(events),
		Malformed: stats.Malformed,
	}, nil
}

// Close shuts down the output and alert sinks.
func (p *Pipeline) Close() error {
	if err := p.output.Close(); err != nil {
		p.alerter.Close()
		return err
	}
	return p.alerter.Close()
}
