// Package engine runs the featurize → score → classify sequence over a
// batch of log records.
package engine

import (
	"errors"
	"fmt"

	"github.com/crimson-sun/logwarden/internal/engine/classifier"
	"github.com/crimson-sun/logwarden/internal/engine/feature"
	"github.com/crimson-sun/logwarden/internal/engine/scorer"
	"github.com/crimson-sun/logwarden/internal/model"
)

// ErrEmptyInput is returned when a batch contains no records to analyze.
var ErrEmptyInput = errors.New("no records to analyze")

// Engine orchestrates the featurize → score → classify pipeline.
type Engine struct {
	features   *feature.Extractor
	scorer     scorer.Scorer
	classifier *classifier.Classifier
}

// New creates an Engine with the provided components.
func New(feat *feature.Extractor, sc scorer.Scorer, cls *classifier.Classifier) *Engine {
	return &Engine{
		features:   feat,
		scorer:     sc,
		classifier: cls,
	}
}

// Analyze fits the anomaly model over the whole batch and returns one
// classified event per record, in input order. The model is fitted fresh
// on every call; only the rule table and keywords persist across batches.
func (e *Engine) Analyze(records []model.LogRecord) ([]model.ClassifiedEvent, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	vectors, matrix := e.features.Matrix(records)

	results, err := e.scorer.Score(matrix)
	if err != nil {
		return nil, fmt.Errorf("engine score: %w", err)
	}
	if len(results) != len(records) {
		return nil, fmt.Errorf("engine score: got %d results for %d records", len(results), len(records))
	}

	events := make([]model.ClassifiedEvent, len(records))
	for i, rec := range records {
		res := results[i]
		attack := vectors[i].Attack
		events[i] = model.ClassifiedEvent{
			ScoredRecord: model.ScoredRecord{
				LogRecord: rec,
				Score:     res.Score,
				Outlier:   res.Outlier,
			},
			Attack:   attack,
			Category: e.classifier.Classify(res.Outlier, attack, rec.Level),
		}
	}
	return events, nil
}
