package source

import (
	"context"
	"time"

	"github.com/crimson-sun/logwarden/internal/model"
)

// Source defines the interface all log record sources must implement.
type Source interface {
	// Fetch returns the complete batch of records for this run, in order,
	// together with ingestion statistics.
	Fetch(ctx context.Context, cfg Config) ([]model.LogRecord, Stats, error)
}

// Config holds provider-specific source settings.
type Config struct {
	// Path is the input file for the file provider.
	Path string

	// Synthetic generation parameters.
	Count      int
	Start      time.Time
	Window     time.Duration
	AttackRate float64
	Seed       int64
}

// Stats reports what happened during ingestion.
type Stats struct {
	// Malformed counts input lines that could not be parsed and were skipped.
	Malformed int
}
