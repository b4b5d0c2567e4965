package model

import (
	"fmt"
	"strings"
	"time"
)

// Level is the severity level carried by a log record.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// ParseLevel converts a level token ("INFO", "WARN", "ERROR") to a Level.
// Matching is case-insensitive; unknown tokens are an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown level: %q", s)
	}
}

// String returns the canonical token for the level.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialize as
// their canonical token.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// LogRecord is a single access-log entry, produced by the generator or the
// file parser. Immutable once created.
type LogRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	SourceAddr string    `json:"source_addr"` // dotted-quad IPv4
	Level      Level     `json:"level"`
	Message    string    `json:"message,omitempty"`
}
