package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/api"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/archive"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/collector"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/config"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/dune"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/logging"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/pipeline"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/store"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/uploader"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/pipeline.yaml", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger, closeLog, err := logging.Setup(cfg.Logging, "pipeline")
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("starting pipeline",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	st := store.New(cfg.Storage.DataDir)

	// Create Kalshi API client; the rate limiter spaces page requests
	rest := api.NewClient(
		cfg.Kalshi.BaseURL,
		cfg.Kalshi.APIKey,
		api.WithLogger(logger),
		api.WithUserAgent("kalshi-dune-pipeline/"+version.Version),
		api.WithTimeout(cfg.Kalshi.Timeout),
		api.WithRetries(cfg.Kalshi.MaxRetries, cfg.Kalshi.RetryBackoff),
		api.WithRateLimiter(rate.NewLimiter(rate.Every(cfg.Kalshi.PageDelay), 1)),
	)

	// Optional local Postgres mirror
	var archiver collector.Archiver
	if cfg.Archive.Enabled {
		mirror, err := archive.NewMirror(ctx, cfg.Archive.Postgres, logger)
		if err != nil {
			logger.Warn("archive unavailable, continuing without it", "error", err)
		} else {
			defer mirror.Close()
			archiver = mirror
		}
	}

	col := collector.New(collector.Config{
		EventPageLimit:  cfg.Kalshi.EventPageLimit,
		MarketPageLimit: cfg.Kalshi.MarketPageLimit,
		MaxPages:        cfg.Kalshi.MaxPages,
	}, rest, st, archiver, logger)

	// Create Dune API client and uploader. Building the uploader up
	// front surfaces a missing DUNE_API_KEY before any collection work.
	client := dune.NewClient(
		cfg.Dune.BaseURL,
		cfg.Dune.APIKey,
		dune.WithLogger(logger),
		dune.WithUserAgent("kalshi-dune-pipeline/"+version.Version),
		dune.WithTimeout(cfg.Dune.Timeout),
		dune.WithRetries(cfg.Dune.MaxRetries, cfg.Dune.RetryBackoff),
	)

	up, err := uploader.New(uploader.Config{
		Namespace:    cfg.Dune.Namespace,
		EventsTable:  cfg.Dune.EventsTable,
		MarketsTable: cfg.Dune.MarketsTable,
		IsPrivate:    cfg.Dune.IsPrivate,
		AppendMode:   cfg.Dune.AppendMode,
		Date:         cfg.Run.CollectionDate,
		EntityPause:  cfg.Dune.EntityPause,
	}, client, st, logger)
	if err != nil {
		logger.Error("failed to create uploader", "error", err)
		os.Exit(1)
	}

	// Run collect then upload; stop at the first failure
	p := pipeline.New(
		pipeline.Config{StageTimeout: cfg.Run.StageTimeout},
		logger,
		pipeline.CollectStage(col),
		pipeline.UploadStage(up),
	)

	result, err := p.Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	logger.Info("pipeline finished",
		"run_id", result.RunID,
		"duration", result.Duration,
	)
}
