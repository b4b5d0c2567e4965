// Package feature derives numeric feature vectors from log records.
// Extraction is deterministic: the same record always yields the same vector.
package feature

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/logwarden/internal/model"
)

// DefaultKeywords are the attack-indicator substrings looked for in messages.
func DefaultKeywords() []string {
	return []string{"ataque", "indevido", "falha", "invasao"}
}

// Names lists the feature columns in matrix order.
var Names = []string{"hour", "level", "attack", "first_octet"}

// Vector is the feature set extracted from one record.
type Vector struct {
	Hour       int         // hour-of-day from the timestamp
	Level      model.Level // ordinal severity encoding
	Attack     bool        // attack-indicator keyword present in the message
	FirstOctet int         // leading octet of the source address
}

// Row returns the vector as a feature-matrix row, ordered per Names.
func (v Vector) Row() []float64 {
	attack := 0.0
	if v.Attack {
		attack = 1.0
	}
	return []float64{float64(v.Hour), float64(v.Level), attack, float64(v.FirstOctet)}
}

// Extractor maps records to vectors. Keyword matching is case-insensitive
// and diacritic-insensitive, so "invasao" matches "invasão".
type Extractor struct {
	keywords []string
}

// New creates an Extractor for the given keywords. An empty list falls back
// to DefaultKeywords.
func New(keywords []string) *Extractor {
	if len(keywords) == 0 {
		keywords = DefaultKeywords()
	}
	folded := make([]string, len(keywords))
	for i, kw := range keywords {
		folded[i] = fold(kw)
	}
	return &Extractor{keywords: folded}
}

// Extract derives the feature vector for a single record.
func (e *Extractor) Extract(rec model.LogRecord) Vector {
	return Vector{
		Hour:       rec.Timestamp.Hour(),
		Level:      rec.Level,
		Attack:     e.HasAttackIndicator(rec.Message),
		FirstOctet: firstOctet(rec.SourceAddr),
	}
}

// Matrix derives vectors for all records and returns them alongside the
// feature matrix handed to the scorer.
func (e *Extractor) Matrix(records []model.LogRecord) ([]Vector, [][]float64) {
	vectors := make([]Vector, len(records))
	rows := make([][]float64, len(records))
	for i, rec := range records {
		vectors[i] = e.Extract(rec)
		rows[i] = vectors[i].Row()
	}
	return vectors, rows
}

// HasAttackIndicator reports whether the message contains any configured
// attack keyword after case and diacritic folding.
func (e *Extractor) HasAttackIndicator(message string) bool {
	msg := fold(message)
	for _, kw := range e.keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// foldTransformer strips combining marks after NFD decomposition, so
// accented and unaccented spellings compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// firstOctet extracts the leading octet of a dotted-quad address.
// Unparsable addresses contribute 0.
func firstOctet(addr string) int {
	head, _, ok := strings.Cut(addr, ".")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 || n > 255 {
		return 0
	}
	return n
}
