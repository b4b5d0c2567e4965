package logwarden

import (
	"time"

	"github.com/crimson-sun/logwarden/internal/engine/classifier"
	"github.com/crimson-sun/logwarden/internal/model"
)

type options struct {
	contamination  float64
	trees          int
	sampleSize     int
	seed           int64
	keywords       []string
	criticalLevel  model.Level
	rules          []classifier.Rule
	suppressWindow time.Duration
}

// Option configures a Warden instance.
type Option func(*options)

// WithContamination sets the expected outlier fraction the model assumes.
// Default: 0.1.
func WithContamination(f float64) Option {
	return func(o *options) { o.contamination = f }
}

// WithTrees sets the number of isolation trees. Default: 100.
func WithTrees(n int) Option {
	return func(o *options) { o.trees = n }
}

// WithSampleSize sets the per-tree sub-sample size. Default: 256.
func WithSampleSize(n int) Option {
	return func(o *options) { o.sampleSize = n }
}

// WithSeed fixes the model RNG seed. Runs with the same seed and input
// produce identical labels. Default: 42.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithKeywords replaces the attack-indicator keyword list. Matching is
// case- and diacritic-insensitive.
func WithKeywords(keywords ...string) Option {
	return func(o *options) { o.keywords = keywords }
}

// WithCriticalLevel sets the record level at which an outlier escalates to
// Critical even without an attack indicator. Default: "ERROR".
func WithCriticalLevel(level string) Option {
	return func(o *options) {
		if lvl, err := model.ParseLevel(level); err == nil {
			o.criticalLevel = lvl
		}
	}
}

// WithRules replaces the whole classification rule table. Overrides
// WithCriticalLevel.
func WithRules(rules []Rule) Option {
	return func(o *options) {
		o.rules = make([]classifier.Rule, len(rules))
		for i, r := range rules {
			o.rules[i] = r.internal()
		}
	}
}

// WithSuppressWindow sets the window within which repeated critical events
// from one address collapse into a single alert. Zero disables
// suppression. Default: 1m.
func WithSuppressWindow(d time.Duration) Option {
	return func(o *options) { o.suppressWindow = d }
}

func defaultOptions() options {
	return options{
		contamination:  0.1,
		trees:          100,
		sampleSize:     256,
		seed:           42,
		criticalLevel:  model.LevelError,
		suppressWindow: time.Minute,
	}
}
