package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouniksai/Challenge-1b/internal/artifact"
	"github.com/mouniksai/Challenge-1b/internal/assist"
	"github.com/mouniksai/Challenge-1b/internal/config"
	"github.com/mouniksai/Challenge-1b/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	flag.StringVar(&cfg.InputSpec, "input", cfg.InputSpec, "path to the input artifact JSON")
	flag.StringVar(&cfg.InputDir, "docs", cfg.InputDir, "directory containing the referenced documents")
	flag.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "path for the output artifact JSON")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	in, err := artifact.LoadInput(cfg.InputSpec)
	if err != nil {
		log.Error("invalid input artifact", "error", err)
		os.Exit(1)
	}

	var client *assist.Client
	if cfg.AssistantEnabled {
		client = assist.NewClient(cfg.AssistantURL, cfg.AssistantModel, cfg.AssistantTimeout, cfg.AssistantFailureLimit)
		defer client.Close()
	}

	engine := pipeline.New(cfg, client, log)

	out, err := engine.Run(ctx, in)
	if err != nil {
		log.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	if err := artifact.WriteOutput(cfg.OutputPath, out); err != nil {
		log.Error("write output failed", "error", err)
		os.Exit(1)
	}

	log.Info("analysis complete",
		"output", cfg.OutputPath,
		"documents", len(out.Metadata.InputDocuments),
		"sections", len(out.ExtractedSections),
		"subsections", len(out.SubsectionAnalysis),
	)
}
