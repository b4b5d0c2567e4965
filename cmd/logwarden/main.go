package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crimson-sun/logwarden/internal/alert"
	"github.com/crimson-sun/logwarden/internal/config"
	"github.com/crimson-sun/logwarden/internal/engine"
	"github.com/crimson-sun/logwarden/internal/engine/classifier"
	"github.com/crimson-sun/logwarden/internal/engine/feature"
	"github.com/crimson-sun/logwarden/internal/engine/scorer"
	"github.com/crimson-sun/logwarden/internal/logging"
	"github.com/crimson-sun/logwarden/internal/model"
	"github.com/crimson-sun/logwarden/internal/output"
	fileout "github.com/crimson-sun/logwarden/internal/output/file"
	"github.com/crimson-sun/logwarden/internal/output/multi"
	"github.com/crimson-sun/logwarden/internal/output/stdout"
	"github.com/crimson-sun/logwarden/internal/pipeline"
	"github.com/crimson-sun/logwarden/internal/report"
	"github.com/crimson-sun/logwarden/internal/source"

	// Register source implementations.
	_ "github.com/crimson-sun/logwarden/internal/source/generator"
	_ "github.com/crimson-sun/logwarden/internal/source/logfile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	outputIsStdout := cfg.Output.Format != "file"
	logging.Init(outputIsStdout, logging.ParseLevel(cfg.LogLevel))

	// Resolve source. An explicit input path selects the file provider.
	provider := cfg.Source.Provider
	if cfg.Source.Path != "" {
		provider = "file"
	}
	ctor, err := source.Get(provider)
	if err != nil {
		log.Fatalf("failed to get source: %v", err)
	}
	src := ctor()

	// Initialize engine components.
	criticalLevel, err := model.ParseLevel(cfg.Engine.CriticalLevel)
	if err != nil {
		log.Fatalf("invalid critical level: %v", err)
	}
	feat := feature.New(cfg.Engine.Keywords)
	sc := scorer.New(scorer.Config{
		Contamination: cfg.Engine.Contamination,
		Trees:         cfg.Engine.Trees,
		SampleSize:    cfg.Engine.SampleSize,
		Seed:          cfg.Engine.Seed,
	})
	cls := classifier.New(classifier.DefaultRules(criticalLevel))
	eng := engine.New(feat, sc, cls)

	out, err := buildOutput(cfg.Output)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}

	memSink := alert.NewMemory()
	alerter := alert.New(
		alert.NewSuppressor(time.Duration(cfg.Alert.SuppressWindow)),
		memSink, alert.NewLog(),
	)

	p := pipeline.New(src, eng, out, alerter)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	srcCfg := source.Config{
		Path:       cfg.Source.Path,
		Count:      cfg.Generator.Count,
		Window:     time.Duration(cfg.Generator.Window),
		AttackRate: cfg.Generator.AttackRate,
		Seed:       cfg.Generator.Seed,
	}

	slog.Info("starting run", "source", provider, "contamination", cfg.Engine.Contamination)
	result, err := p.Run(ctx, srcCfg)
	if err != nil {
		log.Fatalf("pipeline error: %v", err)
	}

	if result.Malformed > 0 {
		slog.Warn("skipped unparsable input lines", "count", result.Malformed)
	}
	slog.Info("run complete",
		"records", result.Summary.Total,
		"normal", result.Summary.ByCategory[model.CategoryNormal],
		"suspicious", result.Summary.ByCategory[model.CategorySuspicious],
		"critical", result.Summary.ByCategory[model.CategoryCritical],
		"outliers", result.Summary.Outliers,
		"alerts", len(result.Alerts),
	)

	if cfg.Report.Enabled {
		renderer, err := report.NewRenderer(cfg.Report.Dir)
		if err != nil {
			log.Fatalf("failed to create chart renderer: %v", err)
		}
		paths, err := renderer.Render(result.Summary)
		if err != nil {
			log.Fatalf("failed to render charts: %v", err)
		}
		slog.Info("charts rendered", "paths", paths)
	}
}

// buildOutput assembles the classified-event table destination from config.
func buildOutput(cfg config.OutputConfig) (output.Output, error) {
	verbosity := output.ParseVerbosity(cfg.Verbosity)
	switch cfg.Format {
	case "file":
		return fileout.New(cfg.Path, verbosity)
	case "both":
		f, err := fileout.New(cfg.Path, verbosity)
		if err != nil {
			return nil, err
		}
		return multi.New(stdout.New(verbosity, cfg.Pretty), f), nil
	default:
		return stdout.New(verbosity, cfg.Pretty), nil
	}
}
