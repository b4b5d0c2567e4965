// Package classifier buckets scored records into severity tiers using an
// ordered rule table.
package classifier

import "github.com/crimson-sun/logwarden/internal/model"

// Match is a tri-state condition on a boolean signal.
type Match int8

const (
	Any Match = iota // condition ignored
	Yes              // signal must be true
	No               // signal must be false
)

func (m Match) ok(v bool) bool {
	switch m {
	case Yes:
		return v
	case No:
		return !v
	default:
		return true
	}
}

// Rule maps a condition on (outlier, attack-indicator, level) to a category.
type Rule struct {
	Outlier  Match
	Attack   Match
	MinLevel model.Level // matches when record level >= MinLevel; LevelInfo matches all
	Category model.Category
}

// Classifier applies rules in order; the first matching rule wins and
// anything unmatched is Normal. Classification is a pure function of its
// inputs: no state carries across records.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier with the given rule table.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// DefaultRules is the standard escalation policy:
//
//  1. outlier with an attack indicator          → Critical
//  2. outlier at or above criticalLevel         → Critical
//  3. outlier alone                             → Suspicious
//  4. attack indicator alone                    → Suspicious
//  5. otherwise                                 → Normal
func DefaultRules(criticalLevel model.Level) []Rule {
	return []Rule{
		{Outlier: Yes, Attack: Yes, Category: model.CategoryCritical},
		{Outlier: Yes, MinLevel: criticalLevel, Category: model.CategoryCritical},
		{Outlier: Yes, Category: model.CategorySuspicious},
		{Attack: Yes, Category: model.CategorySuspicious},
	}
}

// Classify returns the category for the given signal triple.
func (c *Classifier) Classify(outlier, attack bool, level model.Level) model.Category {
	for _, r := range c.rules {
		if r.Outlier.ok(outlier) && r.Attack.ok(attack) && level >= r.MinLevel {
			return r.Category
		}
	}
	return model.CategoryNormal
}

// Rules returns a copy of the rule table for inspection.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
