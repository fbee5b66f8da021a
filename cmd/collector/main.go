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
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/logging"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/store"
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
	logger, closeLog, err := logging.Setup(cfg.Logging, "collector")
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("starting collector",
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

	st := store.New(cfg.Storage.DataDir)

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

	summary, err := col.Run(ctx)
	if err != nil {
		logger.Error("collection failed", "error", err)
		os.Exit(1)
	}

	logger.Info("collector finished",
		"events", summary.Events.Rows,
		"markets", summary.Markets.Rows,
		"duration", summary.Duration,
	)
}
