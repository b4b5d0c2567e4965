package output

import (
	"strings"
	"testing"

	"github.com/crimson-sun/logwarden/internal/model"
)

func sample() model.ClassifiedEvent {
	return model.ClassifiedEvent{
		ScoredRecord: model.ScoredRecord{
			LogRecord: model.LogRecord{
				SourceAddr: "10.0.0.1",
				Level:      model.LevelWarn,
				Message:    "Tentativa de acesso indevido",
			},
			Score:   0.87,
			Outlier: true,
		},
		Attack:   true,
		Category: model.CategorySuspicious,
	}
}

func TestParseVerbosity(t *testing.T) {
	cases := []struct {
		in   string
		want Verbosity
	}{
		{"minimal", Minimal},
		{"standard", Standard},
		{"full", Full},
		{"", Standard},
		{"loud", Standard},
	}
	for _, tc := range cases {
		if got := ParseVerbosity(tc.in); got != tc.want {
			t.Errorf("ParseVerbosity(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatEventMinimal(t *testing.T) {
	got := FormatEvent(sample(), Minimal)
	if got.Message != "" {
		t.Fatalf("minimal must strip message, got %q", got.Message)
	}
	if got.Score != 0 {
		t.Fatalf("minimal must strip score, got %v", got.Score)
	}
	if got.Category != model.CategorySuspicious || !got.Outlier || !got.Attack {
		t.Fatalf("minimal must keep classification signals: %+v", got)
	}
}

func TestFormatEventStandardTruncates(t *testing.T) {
	e := sample()
	e.Message = strings.Repeat("x", standardMaxMessage+100)
	got := FormatEvent(e, Standard)
	if len(got.Message) != standardMaxMessage+len("...") {
		t.Fatalf("message length = %d", len(got.Message))
	}
	if !strings.HasSuffix(got.Message, "...") {
		t.Fatal("truncated message must end with ellipsis")
	}
}

func TestFormatEventStandardShortMessageIntact(t *testing.T) {
	e := sample()
	got := FormatEvent(e, Standard)
	if got != e {
		t.Fatalf("short message must pass through unchanged: %+v", got)
	}
}

func TestFormatEventFull(t *testing.T) {
	e := sample()
	e.Message = strings.Repeat("y", standardMaxMessage+500)
	got := FormatEvent(e, Full)
	if got.Message != e.Message {
		t.Fatal("full verbosity must not truncate")
	}
}
