package logwarden

import (
	"time"

	"github.com/crimson-sun/logwarden/internal/engine/classifier"
	"github.com/crimson-sun/logwarden/internal/model"
)

// Category is the severity tier assigned to a classified record.
type Category = model.Category

// Category values, in ascending severity order.
const (
	Normal     = model.CategoryNormal
	Suspicious = model.CategorySuspicious
	Critical   = model.CategoryCritical
)

// Match is a tri-state condition on a rule signal.
type Match = classifier.Match

// Match values.
const (
	Any = classifier.Any
	Yes = classifier.Yes
	No  = classifier.No
)

// Record is a structured access-log entry handed to Analyze.
type Record struct {
	Timestamp  time.Time
	SourceAddr string // dotted-quad IPv4
	Level      string // "INFO", "WARN", "ERROR"
	Message    string
}

// Event is one analyzed record: the input plus the model's score, the
// outlier label, the attack-indicator flag, and the final category.
type Event struct {
	Record
	Score    float64
	Outlier  bool
	Attack   bool
	Category Category
}

// Alert is the notification produced for a Critical event.
type Alert = model.Alert

// Report is the result of one Analyze call.
type Report struct {
	Events    []Event
	Alerts    []Alert
	Malformed int // lines skipped as unparsable (AnalyzeLines only)
}

// Rule maps a condition on (outlier, attack-indicator, level) to a
// category. Rules apply in order; the first match wins and anything
// unmatched is Normal.
type Rule struct {
	Outlier  Match
	Attack   Match
	MinLevel string // empty means any level
	Category Category
}

func (r Rule) internal() classifier.Rule {
	minLevel := model.LevelInfo
	if r.MinLevel != "" {
		if lvl, err := model.ParseLevel(r.MinLevel); err == nil {
			minLevel = lvl
		}
	}
	return classifier.Rule{
		Outlier:  r.Outlier,
		Attack:   r.Attack,
		MinLevel: minLevel,
		Category: r.Category,
	}
}

func recordToModel(r Record) (model.LogRecord, error) {
	level, err := model.ParseLevel(r.Level)
	if err != nil {
		return model.LogRecord{}, err
	}
	return model.LogRecord{
		Timestamp:  r.Timestamp,
		SourceAddr: r.SourceAddr,
		Level:      level,
		Message:    r.Message,
	}, nil
}

func eventFromModel(ev model.ClassifiedEvent) Event {
	return Event{
		Record: Record{
			Timestamp:  ev.Timestamp,
			SourceAddr: ev.SourceAddr,
			Level:      ev.Level.String(),
			Message:    ev.Message,
		},
		Score:    ev.Score,
		Outlier:  ev.Outlier,
		Attack:   ev.Attack,
		Category: ev.Category,
	}
}
