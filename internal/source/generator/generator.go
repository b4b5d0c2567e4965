// Package generator produces synthetic access-log records for pipeline runs
// without a real input file.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/crimson-sun/logwarden/internal/model"
	"github.com/crimson-sun/logwarden/internal/source"
)

func init() {
	source.Register("synthetic", func() source.Source {
		return &Generator{}
	})
}

// Base messages deliberately contain no attack-indicator keywords, so an
// injection rate of 0 yields zero flagged records.
var baseMessages = []string{
	"Acesso permitido",
	"Transacao realizada",
	"Consulta de saldo executada",
	"Sessao encerrada pelo usuario",
	"Login efetuado com sucesso",
}

// Attack phrases appended when injection triggers. Each contains at least
// one default indicator keyword.
var attackPhrases = []string{
	"Tentativa de acesso indevido",
	"Possivel ataque detectado",
	"Falha de autenticacao repetida",
	"Tentativa de invasao bloqueada",
}

// Level distribution: mostly INFO, some WARN, few ERROR.
var levelWeights = []struct {
	level  model.Level
	weight float64
}{
	{model.LevelInfo, 0.7},
	{model.LevelWarn, 0.2},
	{model.LevelError, 0.1},
}

// Generator implements source.Source by synthesizing records.
type Generator struct{}

// Fetch generates cfg.Count records with timestamps inside
// [cfg.Start, cfg.Start+cfg.Window], sorted ascending. Each message gets an
// attack phrase appended with probability cfg.AttackRate. The same seed and
// parameters always produce the same records.
func (g *Generator) Fetch(_ context.Context, cfg source.Config) ([]model.LogRecord, source.Stats, error) {
	if cfg.Count < 0 {
		return nil, source.Stats{}, fmt.Errorf("generator: negative count %d", cfg.Count)
	}

	start := cfg.Start
	if start.IsZero() {
		start = time.Now().Add(-cfg.Window)
	}
	window := cfg.Window
	if window <= 0 {
		window = time.Hour
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	records := make([]model.LogRecord, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		offset := time.Duration(rng.Int63n(int64(window) + 1))
		msg := baseMessages[rng.Intn(len(baseMessages))]
		if rng.Float64() < cfg.AttackRate {
			msg += " - " + attackPhrases[rng.Intn(len(attackPhrases))]
		}
		records = append(records, model.LogRecord{
			Timestamp:  start.Add(offset).Truncate(time.Second),
			SourceAddr: randomAddr(rng),
			Level:      randomLevel(rng),
			Message:    msg,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, source.Stats{}, nil
}

// randomAddr produces a dotted-quad address with octets in [1, 254].
func randomAddr(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+rng.Intn(254), 1+rng.Intn(254), 1+rng.Intn(254), 1+rng.Intn(254))
}

func randomLevel(rng *rand.Rand) model.Level {
	r := rng.Float64()
	for _, lw := range levelWeights {
		if r < lw.weight {
			return lw.level
		}
		r -= lw.weight
	}
	return model.LevelInfo
}
