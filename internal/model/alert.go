package model

import (
	"fmt"
	"time"
)

// Alert is the notification produced for a Critical event. Dispatch is
// simulated: alerts are collected by sinks, never sent over a network.
type Alert struct {
	ID         string    `json:"alert_id"`
	Timestamp  time.Time `json:"timestamp"` // timestamp of the triggering record
	SourceAddr string    `json:"source_addr"`
	Level      Level     `json:"level"`
	Message    string    `json:"message"`
	Count      int       `json:"count,omitempty"` // >1 when repeats were suppressed
}

// String renders the human-readable alert line.
func (a Alert) String() string {
	s := fmt.Sprintf("CRITICAL ALERT: %s | ip=%s | level=%s | %s",
		a.Timestamp.Format("2006-01-02 15:04:05"), a.SourceAddr, a.Level, a.Message)
	if a.Count > 1 {
		s = fmt.Sprintf("%s (x%d)", s, a.Count)
	}
	return s
}
