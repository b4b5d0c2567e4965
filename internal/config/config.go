package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all logwarden configuration.
type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Generator GeneratorConfig `yaml:"generator"`
	Engine    EngineConfig    `yaml:"engine"`
	Alert     AlertConfig     `yaml:"alert"`
	Output    OutputConfig    `yaml:"output"`
	Report    ReportConfig    `yaml:"report"`
	LogLevel  string          `yaml:"log_level"`
}

// SourceConfig selects where records come from.
type SourceConfig struct {
	Provider string `yaml:"provider"` // "synthetic" or "file"
	Path     string `yaml:"path"`     // input file path for the file provider
}

// GeneratorConfig holds synthetic log generation settings.
type GeneratorConfig struct {
	Count      int      `yaml:"count"`
	Window     Duration `yaml:"window"` // records span [now-window, now]
	AttackRate float64  `yaml:"attack_rate"`
	Seed       int64    `yaml:"seed"`
}

// EngineConfig holds scoring and classification settings.
type EngineConfig struct {
	Contamination float64  `yaml:"contamination"` // expected outlier fraction
	Trees         int      `yaml:"trees"`
	SampleSize    int      `yaml:"sample_size"`
	Seed          int64    `yaml:"seed"`
	Keywords      []string `yaml:"keywords"`       // attack-indicator substrings
	CriticalLevel string   `yaml:"critical_level"` // level that escalates outliers to Critical
}

// AlertConfig holds alert emission settings.
type AlertConfig struct {
	SuppressWindow Duration `yaml:"suppress_window"` // collapse repeats per address
}

// OutputConfig holds classified-event table destination settings.
type OutputConfig struct {
	Format    string `yaml:"format"` // "stdout", "file", or "both"
	Path      string `yaml:"path"`
	Pretty    bool   `yaml:"pretty"`
	Verbosity string `yaml:"verbosity"` // "minimal", "standard", "full"
}

// ReportConfig holds chart rendering settings.
type ReportConfig struct {
	Dir     string `yaml:"dir"`
	Enabled bool   `yaml:"enabled"`
}

// Duration wraps time.Duration so YAML values like "5s" or "1h" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
// When LOGWARDEN_CONFIG names a YAML file, its values are applied first and
// environment variables override them.
func Load() (Config, error) {
	cfg := defaults()
	if path := os.Getenv("LOGWARDEN_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	fromEnv(&cfg)
	return cfg, nil
}

func defaults() Config {
	return Config{
		Source: SourceConfig{Provider: "synthetic"},
		Generator: GeneratorConfig{
			Count:      500,
			Window:     Duration(time.Hour),
			AttackRate: 0.1,
			Seed:       42,
		},
		Engine: EngineConfig{
			Contamination: 0.1,
			Trees:         100,
			SampleSize:    256,
			Seed:          42,
			CriticalLevel: "ERROR",
		},
		Alert: AlertConfig{SuppressWindow: Duration(time.Minute)},
		Output: OutputConfig{
			Format:    "stdout",
			Path:      "events.ndjson",
			Verbosity: "standard",
		},
		Report:   ReportConfig{Dir: "charts", Enabled: true},
		LogLevel: "info",
	}
}

// loadFile merges a YAML config file into cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// fromEnv overlays LOGWARDEN_* environment variables onto cfg.
func fromEnv(cfg *Config) {
	cfg.Source.Provider = getenv("LOGWARDEN_SOURCE", cfg.Source.Provider)
	cfg.Source.Path = getenv("LOGWARDEN_INPUT", cfg.Source.Path)

	cfg.Generator.Count = getenvInt("LOGWARDEN_COUNT", cfg.Generator.Count)
	cfg.Generator.Window = getenvDuration("LOGWARDEN_WINDOW", cfg.Generator.Window)
	cfg.Generator.AttackRate = getenvFloat("LOGWARDEN_ATTACK_RATE", cfg.Generator.AttackRate)
	cfg.Generator.Seed = getenvInt64("LOGWARDEN_GENERATOR_SEED", cfg.Generator.Seed)

	cfg.Engine.Contamination = getenvFloat("LOGWARDEN_CONTAMINATION", cfg.Engine.Contamination)
	cfg.Engine.Trees = getenvInt("LOGWARDEN_TREES", cfg.Engine.Trees)
	cfg.Engine.SampleSize = getenvInt("LOGWARDEN_SAMPLE_SIZE", cfg.Engine.SampleSize)
	cfg.Engine.Seed = getenvInt64("LOGWARDEN_SEED", cfg.Engine.Seed)
	cfg.Engine.CriticalLevel = getenv("LOGWARDEN_CRITICAL_LEVEL", cfg.Engine.CriticalLevel)
	if v := os.Getenv("LOGWARDEN_KEYWORDS"); v != "" {
		cfg.Engine.Keywords = splitList(v)
	}

	cfg.Alert.SuppressWindow = getenvDuration("LOGWARDEN_SUPPRESS_WINDOW", cfg.Alert.SuppressWindow)

	cfg.Output.Format = getenv("LOGWARDEN_OUTPUT", cfg.Output.Format)
	cfg.Output.Path = getenv("LOGWARDEN_OUTPUT_PATH", cfg.Output.Path)
	cfg.Output.Pretty = getenvBool("LOGWARDEN_OUTPUT_PRETTY", cfg.Output.Pretty)
	cfg.Output.Verbosity = getenv("LOGWARDEN_VERBOSITY", cfg.Output.Verbosity)

	cfg.Report.Dir = getenv("LOGWARDEN_CHART_DIR", cfg.Report.Dir)
	if v := os.Getenv("LOGWARDEN_CHARTS"); v != "" {
		cfg.Report.Enabled = v != "false" && v != "0"
	}

	cfg.LogLevel = getenv("LOGWARDEN_LOG_LEVEL", cfg.LogLevel)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvDuration(key string, fallback Duration) Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return Duration(d)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
