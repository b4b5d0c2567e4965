// Package scorer assigns anomaly scores to feature matrices.
package scorer

import (
	"fmt"

	"github.com/hed1ad/goguardml/pkg/detectors/iforest"
)

// Scorer fits an unsupervised outlier model over a feature matrix and
// labels every row. Implementations fit once per call; no state survives
// between runs.
type Scorer interface {
	Score(matrix [][]float64) ([]Result, error)
}

// Result is the model output for one matrix row.
type Result struct {
	Score   float64 // anomaly score in [0, 1]; higher is more anomalous
	Outlier bool    // score at or above the contamination-derived threshold
}

// Config holds isolation forest parameters.
type Config struct {
	Contamination float64 // expected outlier fraction (default 0.1)
	Trees         int     // number of isolation trees (default 100)
	SampleSize    int     // sub-sample size per tree (default 256)
	Seed          int64   // RNG seed; fixed seed gives reproducible labels
}

// FitError reports a fatal model-fitting failure, including degenerate
// input matrices.
type FitError struct {
	Reason string
	Err    error
}

func (e *FitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scorer: fit: %s: %v", e.Reason, e.Err)
	}
	return "scorer: fit: " + e.Reason
}

func (e *FitError) Unwrap() error { return e.Err }

// IsolationForest scores batches with a freshly fitted isolation forest.
type IsolationForest struct {
	cfg Config
}

// New creates an IsolationForest scorer, filling zero config fields with
// defaults.
func New(cfg Config) *IsolationForest {
	if cfg.Contamination <= 0 {
		cfg.Contamination = 0.1
	}
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = 256
	}
	return &IsolationForest{cfg: cfg}
}

// Score fits the forest over the matrix and returns a score and outlier
// label per row. A matrix with no variance in any column cannot separate
// outliers and is rejected with a FitError.
func (s *IsolationForest) Score(matrix [][]float64) ([]Result, error) {
	if len(matrix) == 0 {
		return nil, &FitError{Reason: "empty feature matrix"}
	}
	if degenerate(matrix) {
		return nil, &FitError{Reason: "zero-variance feature matrix"}
	}

	det := iforest.New(
		iforest.WithTrees(s.cfg.Trees),
		iforest.WithSampleSize(s.cfg.SampleSize),
		iforest.WithContamination(s.cfg.Contamination),
		iforest.WithSeed(s.cfg.Seed),
	)
	if err := det.Fit(matrix); err != nil {
		return nil, &FitError{Reason: "isolation forest fit failed", Err: err}
	}

	scores, err := det.Predict(matrix)
	if err != nil {
		return nil, &FitError{Reason: "isolation forest predict failed", Err: err}
	}

	threshold := det.Threshold()
	results := make([]Result, len(scores))
	for i, score := range scores {
		results[i] = Result{Score: score, Outlier: score >= threshold}
	}
	return results, nil
}

// degenerate reports whether every column of the matrix is constant.
func degenerate(matrix [][]float64) bool {
	first := matrix[0]
	for _, row := range matrix[1:] {
		for j, v := range row {
			if j < len(first) && v != first[j] {
				return false
			}
		}
	}
	return true
}
