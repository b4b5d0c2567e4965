package model

// Category is the severity tier assigned to a classified event.
type Category string

const (
	CategoryNormal     Category = "Normal"
	CategorySuspicious Category = "Suspicious"
	CategoryCritical   Category = "Critical"
)

// Categories lists all tiers in ascending severity order.
func Categories() []Category {
	return []Category{CategoryNormal, CategorySuspicious, CategoryCritical}
}

// ScoredRecord is a LogRecord annotated with the anomaly model's output.
// Produced by the scorer; immutable.
type ScoredRecord struct {
	LogRecord
	Score   float64 `json:"anomaly_score,omitempty"`
	Outlier bool    `json:"is_outlier"`
}

// ClassifiedEvent is logwarden's output type: a scored record with its
// attack-indicator flag and final category. Consumed by the alert emitter,
// the output writers, and the report builder.
type ClassifiedEvent struct {
	ScoredRecord
	Attack   bool     `json:"attack_indicator"`
	Category Category `json:"category"`
}
