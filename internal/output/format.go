package output

import "github.com/crimson-sun/logwarden/internal/model"

// Verbosity controls how much detail each written event retains.
type Verbosity int

const (
	Minimal  Verbosity = iota // strip raw message and anomaly score
	Standard                  // retain everything, truncate long messages
	Full                      // retain everything verbatim
)

// ParseVerbosity maps a string ("minimal", "standard", "full") to a
// Verbosity. Unknown strings default to Standard.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}

const standardMaxMessage = 2000

// FormatEvent returns a copy of the event with fields stripped according to
// verbosity. At Minimal, Message and Score are zeroed. At Standard, very
// long messages are truncated.
func FormatEvent(e model.ClassifiedEvent, verbosity Verbosity) model.ClassifiedEvent {
	switch verbosity {
	case Minimal:
		e.Message = ""
		e.Score = 0
	case Standard:
		e.Message = truncate(e.Message, standardMaxMessage)
	}
	return e
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
