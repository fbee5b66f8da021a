package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/config"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/dune"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/logging"
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
	logger, closeLog, err := logging.Setup(cfg.Logging, "uploader")
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("starting uploader",
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

	// Create Dune API client
	client := dune.NewClient(
		cfg.Dune.BaseURL,
		cfg.Dune.APIKey,
		dune.WithLogger(logger),
		dune.WithUserAgent("kalshi-dune-pipeline/"+version.Version),
		dune.WithTimeout(cfg.Dune.Timeout),
		dune.WithRetries(cfg.Dune.MaxRetries, cfg.Dune.RetryBackoff),
	)

	st := store.New(cfg.Storage.DataDir)

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

	summary, err := up.Run(ctx)
	if err != nil {
		logger.Error("upload failed", "error", err)
		os.Exit(1)
	}

	logger.Info("uploader finished",
		"date", summary.Date,
		"events", summary.Events.Rows,
		"markets", summary.Markets.Rows,
		"duration", summary.Duration,
	)
}
