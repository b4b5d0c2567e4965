package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled log line for parser and feature validation.
type CorpusEntry struct {
	Raw            string `json:"raw"`
	ExpectedAddr   string `json:"expected_addr"`
	ExpectedLevel  string `json:"expected_level"`
	ExpectedHour   int    `json:"expected_hour"`
	ExpectedAttack bool   `json:"expected_attack"`
	Description    string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
