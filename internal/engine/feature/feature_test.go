package feature

import (
	"strings"
	"testing"
	"time"

	"github.com/crimson-sun/logwarden/internal/engine/testdata"
	"github.com/crimson-sun/logwarden/internal/model"
)

func record(hour int, level model.Level, addr, msg string) model.LogRecord {
	return model.LogRecord{
		Timestamp:  time.Date(2026, 8, 20, hour, 15, 0, 0, time.UTC),
		SourceAddr: addr,
		Level:      level,
		Message:    msg,
	}
}

func TestExtractCorpus(t *testing.T) {
	entries, err := testdata.LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	e := New(nil)
	for _, entry := range entries {
		if got := e.HasAttackIndicator(messageOf(t, entry.Raw)); got != entry.ExpectedAttack {
			t.Errorf("%s: attack = %v, want %v", entry.Description, got, entry.ExpectedAttack)
		}
	}
}

// messageOf pulls the message field out of a raw pipe-delimited line.
func messageOf(t *testing.T, raw string) string {
	t.Helper()
	parts := strings.SplitN(raw, " | ", 4)
	if len(parts) != 4 {
		t.Fatalf("corpus line missing fields: %q", raw)
	}
	return parts[3]
}

func TestExtractVector(t *testing.T) {
	e := New(nil)
	v := e.Extract(record(23, model.LevelWarn, "192.168.1.77", "Tentativa de acesso indevido"))
	if v.Hour != 23 {
		t.Fatalf("hour = %d, want 23", v.Hour)
	}
	if v.Level != model.LevelWarn {
		t.Fatalf("level = %v, want WARN", v.Level)
	}
	if !v.Attack {
		t.Fatal("expected attack indicator for 'indevido'")
	}
	if v.FirstOctet != 192 {
		t.Fatalf("first octet = %d, want 192", v.FirstOctet)
	}
}

func TestRowOrder(t *testing.T) {
	v := Vector{Hour: 14, Level: model.LevelError, Attack: true, FirstOctet: 10}
	row := v.Row()
	want := []float64{14, 2, 1, 10}
	if len(row) != len(Names) {
		t.Fatalf("row has %d columns, Names has %d", len(row), len(Names))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("row = %v, want %v", row, want)
		}
	}
}

func TestHasAttackIndicatorDiacritics(t *testing.T) {
	e := New(nil)
	cases := []struct {
		msg  string
		want bool
	}{
		{"Tentativa de invasão bloqueada", true},
		{"Possível ATAQUE detectado", true},
		{"Falha de autenticação repetida", true},
		{"FALHA grave no subsistema", true},
		{"Acesso INDEVIDO ao recurso", true},
		{"Transação realizada", false},
		{"Consulta de saldo executada", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := e.HasAttackIndicator(tc.msg); got != tc.want {
			t.Errorf("HasAttackIndicator(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestCustomKeywords(t *testing.T) {
	e := New([]string{"breach"})
	if !e.HasAttackIndicator("Perimeter BREACH detected") {
		t.Fatal("custom keyword not matched")
	}
	if e.HasAttackIndicator("Possivel ataque detectado") {
		t.Fatal("default keywords should not apply when a custom list is given")
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := New(nil)
	rec := record(7, model.LevelInfo, "10.1.2.3", "Acesso permitido")
	a := e.Extract(rec)
	b := e.Extract(rec)
	if a != b {
		t.Fatalf("same record extracted differently: %+v vs %+v", a, b)
	}
}

func TestMatrixShape(t *testing.T) {
	e := New(nil)
	records := []model.LogRecord{
		record(1, model.LevelInfo, "10.0.0.1", "ok"),
		record(2, model.LevelWarn, "10.0.0.2", "ataque"),
		record(3, model.LevelError, "10.0.0.3", "ok"),
	}
	vectors, matrix := e.Matrix(records)
	if len(vectors) != 3 || len(matrix) != 3 {
		t.Fatalf("got %d vectors, %d rows; want 3 and 3", len(vectors), len(matrix))
	}
	for i, row := range matrix {
		if len(row) != len(Names) {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), len(Names))
		}
		if row[0] != float64(vectors[i].Hour) {
			t.Fatalf("row %d disagrees with its vector", i)
		}
	}
}

func TestFirstOctetEdges(t *testing.T) {
	cases := []struct {
		addr string
		want int
	}{
		{"10.0.0.1", 10},
		{"254.254.254.254", 254},
		{"", 0},
		{"not-an-ip", 0},
	}
	for _, tc := range cases {
		if got := firstOctet(tc.addr); got != tc.want {
			t.Errorf("firstOctet(%q) = %d, want %d", tc.addr, got, tc.want)
		}
	}
}
