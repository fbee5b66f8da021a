package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/api"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/model"
	"github.com/ghost-in-the-code/kalshi-dune-pipeline/internal/store"
)

// Config controls a collection run.
type Config struct {
	// EventPageLimit is the page size for /events requests.
	EventPageLimit int

	// MarketPageLimit is the page size for /markets requests.
	MarketPageLimit int

	// MaxPages caps pagination per entity as a guard against a cursor
	// that never drains.
	MaxPages int
}

// DefaultConfig returns the production collection defaults.
func DefaultConfig() Config {
	return Config{
		EventPageLimit:  200,
		MarketPageLimit: 1000,
		MaxPages:        50,
	}
}

// Archiver mirrors collected records into secondary storage.
type Archiver interface {
	EnsureSchema(ctx context.Context) error
	InsertEvents(ctx context.Context, events []model.EventRecord) (int, error)
	InsertMarkets(ctx context.Context, markets []model.MarketRecord) (int, error)
}

// Collector fetches open events and markets and writes dated CSV
// snapshots.
type Collector struct {
	cfg      Config
	rest     *api.Client
	store    *store.Store
	archiver Archiver // optional, nil disables mirroring
	logger   *slog.Logger
}

// New creates a Collector. archiver may be nil.
func New(cfg Config, rest *api.Client, st *store.Store, archiver Archiver, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		cfg:      cfg,
		rest:     rest,
		store:    st,
		archiver: archiver,
		logger:   logger,
	}
}

// Summary reports what a collection run produced.
type Summary struct {
	Stamp    model.Stamp
	Events   EntityResult
	Markets  EntityResult
	Duration time.Duration
}

// EntityResult reports one entity's collection outcome.
type EntityResult struct {
	Rows    int
	Skipped int
	Pages   int
	Path    string // empty when no snapshot was written
}

// Run performs one collection: probe the exchange, paginate both
// entities, write snapshots, then mirror to the archive if configured.
// The first entity that fails aborts the run with nothing written for
// it.
func (c *Collector) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	stamp := model.NewStamp(start)

	c.logger.Info("starting collection run", "date", stamp.Date)

	// Probe the exchange before paginating. An unreachable API fails
	// the run; an inactive exchange does not, markets stay readable.
	status, err := c.rest.GetExchangeStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("check exchange status: %w", err)
	}
	if !status.ExchangeActive {
		c.logger.Warn("exchange is not active",
			"trading_active", status.TradingActive,
			"estimated_resume", status.EstimatedResumeTime,
		)
	} else {
		c.logger.Info("exchange status",
			"exchange_active", status.ExchangeActive,
			"trading_active", status.TradingActive,
		)
	}

	summary := &Summary{Stamp: stamp}

	events, result, err := c.collectEvents(ctx, stamp)
	if err != nil {
		return nil, err
	}
	summary.Events = result
	if len(events) == 0 {
		c.logger.Warn("no events collected, snapshot not written")
	} else {
		path, err := c.store.WriteSnapshot(store.EntityEvents, stamp.Date, model.EventColumns, eventRows(events))
		if err != nil {
			return nil, fmt.Errorf("write events snapshot: %w", err)
		}
		summary.Events.Path = path
	}

	markets, result, err := c.collectMarkets(ctx, stamp)
	if err != nil {
		return nil, err
	}
	summary.Markets = result
	if len(markets) == 0 {
		c.logger.Warn("no markets collected, snapshot not written")
	} else {
		path, err := c.store.WriteSnapshot(store.EntityMarkets, stamp.Date, model.MarketColumns, marketRows(markets))
		if err != nil {
			return nil, fmt.Errorf("write markets snapshot: %w", err)
		}
		summary.Markets.Path = path
	}

	c.archive(ctx, events, markets)

	summary.Duration = time.Since(start)
	c.logger.Info("collection run complete",
		"events", summary.Events.Rows,
		"events_skipped", summary.Events.Skipped,
		"markets", summary.Markets.Rows,
		"markets_skipped", summary.Markets.Skipped,
		"duration", summary.Duration,
	)

	return summary, nil
}

// archive mirrors records into the archive database. The snapshots are
// already on disk at this point, so archive failures only log.
func (c *Collector) archive(ctx context.Context, events []model.EventRecord, markets []model.MarketRecord) {
	if c.archiver == nil {
		return
	}

	if err := c.archiver.EnsureSchema(ctx); err != nil {
		c.logger.Error("archive schema setup failed", "error", err)
		return
	}

	if n, err := c.archiver.InsertEvents(ctx, events); err != nil {
		c.logger.Error("archiving events failed", "error", err)
	} else {
		c.logger.Info("events archived", "inserted", n, "total", len(events))
	}

	if n, err := c.archiver.InsertMarkets(ctx, markets); err != nil {
		c.logger.Error("archiving markets failed", "error", err)
	} else {
		c.logger.Info("markets archived", "inserted", n, "total", len(markets))
	}
}

func eventRows(events []model.EventRecord) [][]string {
	rows := make([][]string, 0, len(events))
	for i := range events {
		rows = append(rows, events[i].Row())
	}
	return rows
}

func marketRows(markets []model.MarketRecord) [][]string {
	rows := make([][]string, 0, len(markets))
	for i := range markets {
		rows = append(rows, markets[i].Row())
	}
	return rows
}
