package logfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/logwarden/internal/engine/testdata"
	"github.com/crimson-sun/logwarden/internal/model"
	"github.com/crimson-sun/logwarden/internal/source"
)

func TestParseLineValid(t *testing.T) {
	rec, err := ParseLine("2026-08-20 09:15:00 | 10.0.0.5 | INFO | Acesso permitido")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	want := model.LogRecord{
		Timestamp:  time.Date(2026, 8, 20, 9, 15, 0, 0, time.UTC),
		SourceAddr: "10.0.0.5",
		Level:      model.LevelInfo,
		Message:    "Acesso permitido",
	}
	if rec != want {
		t.Fatalf("ParseLine = %+v, want %+v", rec, want)
	}
}

func TestParseLineMessageWithPipes(t *testing.T) {
	rec, err := ParseLine("2026-08-20 09:15:00 | 10.0.0.5 | WARN | user=a | action=b")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if rec.Message != "user=a | action=b" {
		t.Fatalf("message = %q, pipes past the fourth field must be preserved", rec.Message)
	}
}

func TestParseLineMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"missing message", "2026-08-20 09:15:00 | 10.0.0.5 | INFO"},
		{"bad timestamp", "yesterday | 10.0.0.5 | INFO | ok"},
		{"bad address", "2026-08-20 09:15:00 | not-an-ip | INFO | ok"},
		{"ipv6 address", "2026-08-20 09:15:00 | ::1 | INFO | ok"},
		{"unknown level", "2026-08-20 09:15:00 | 10.0.0.5 | TRACE | ok"},
		{"no delimiters", "free text only"},
	}
	for _, tc := range cases {
		if _, err := ParseLine(tc.line); err == nil {
			t.Errorf("%s: expected error for %q", tc.name, tc.line)
		}
	}
}

func TestFormatLineRoundTrip(t *testing.T) {
	records := []model.LogRecord{
		{
			Timestamp:  time.Date(2026, 8, 20, 23, 41, 7, 0, time.UTC),
			SourceAddr: "192.168.1.77",
			Level:      model.LevelWarn,
			Message:    "Tentativa de acesso indevido",
		},
		{
			Timestamp:  time.Date(2026, 8, 20, 3, 2, 59, 0, time.UTC),
			SourceAddr: "172.16.4.2",
			Level:      model.LevelError,
			Message:    "Falha de autenticação repetida",
		},
	}
	for _, rec := range records {
		line := FormatLine(rec)
		back, err := ParseLine(line)
		if err != nil {
			t.Fatalf("ParseLine(FormatLine(%+v)): %v", rec, err)
		}
		if back != rec {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", back, rec)
		}
	}
}

func TestParseCorpus(t *testing.T) {
	entries, err := testdata.LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	for _, entry := range entries {
		rec, err := ParseLine(entry.Raw)
		if err != nil {
			t.Errorf("%s: ParseLine(%q): %v", entry.Description, entry.Raw, err)
			continue
		}
		if rec.SourceAddr != entry.ExpectedAddr {
			t.Errorf("%s: addr = %q, want %q", entry.Description, rec.SourceAddr, entry.ExpectedAddr)
		}
		if rec.Level.String() != entry.ExpectedLevel {
			t.Errorf("%s: level = %q, want %q", entry.Description, rec.Level, entry.ExpectedLevel)
		}
		if rec.Timestamp.Hour() != entry.ExpectedHour {
			t.Errorf("%s: hour = %d, want %d", entry.Description, rec.Timestamp.Hour(), entry.ExpectedHour)
		}
	}
}

func writeTemp(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write temp log: %v", err)
	}
	return path
}

func TestFetchFileOrder(t *testing.T) {
	path := writeTemp(t,
		"2026-08-20 09:15:00 | 10.0.0.5 | INFO | primeiro",
		"2026-08-20 08:00:00 | 10.0.0.6 | WARN | segundo",
		"2026-08-20 10:30:00 | 10.0.0.7 | ERROR | terceiro",
	)
	r := &Reader{}
	records, stats, err := r.Fetch(context.Background(), source.Config{Path: path})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if stats.Malformed != 0 {
		t.Fatalf("malformed = %d, want 0", stats.Malformed)
	}
	got := []string{records[0].Message, records[1].Message, records[2].Message}
	want := []string{"primeiro", "segundo", "terceiro"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("file order broken: got %v, want %v", got, want)
		}
	}
}

func TestFetchSkipsMalformedLines(t *testing.T) {
	// Line 2 is truncated: no message field.
	path := writeTemp(t,
		"2026-08-20 09:15:00 | 10.0.0.5 | INFO | Acesso permitido",
		"2026-08-20 09:16:00 | 10.0.0.6 | WARN",
		"2026-08-20 09:17:00 | 10.0.0.7 | ERROR | Falha de autenticacao",
	)
	r := &Reader{}
	records, stats, err := r.Fetch(context.Background(), source.Config{Path: path})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if stats.Malformed != 1 {
		t.Fatalf("malformed = %d, want 1", stats.Malformed)
	}
}

func TestFetchSkipsBlankLines(t *testing.T) {
	path := writeTemp(t,
		"",
		"2026-08-20 09:15:00 | 10.0.0.5 | INFO | ok",
		"   ",
	)
	r := &Reader{}
	records, stats, err := r.Fetch(context.Background(), source.Config{Path: path})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 1 || stats.Malformed != 0 {
		t.Fatalf("got %d records, %d malformed; want 1 and 0", len(records), stats.Malformed)
	}
}

func TestFetchMissingFile(t *testing.T) {
	r := &Reader{}
	_, _, err := r.Fetch(context.Background(), source.Config{Path: filepath.Join(t.TempDir(), "absent.log")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFetchCancelledContext(t *testing.T) {
	path := writeTemp(t, "2026-08-20 09:15:00 | 10.0.0.5 | INFO | ok")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Reader{}
	if _, _, err := r.Fetch(ctx, source.Config{Path: path}); err == nil {
		t.Fatal("expected context error")
	}
}
